package module

import "talentmap/internal/platform/config"

// Options overrides settings read from config; zero values keep the configured value
type Options struct {
	DataDir           string
	ScholarsFile      string
	ProgramsFile      string
	OutputFile        string
	Sheet             string
	StrictCoordinates bool // can only switch strict mode on
}

func (o Options) apply(s config.Settings) config.Settings {
	if o.DataDir != "" {
		s.DataDir = o.DataDir
	}
	if o.ScholarsFile != "" {
		s.ScholarsFile = o.ScholarsFile
	}
	if o.ProgramsFile != "" {
		s.ProgramsFile = o.ProgramsFile
	}
	if o.OutputFile != "" {
		s.OutputFile = o.OutputFile
	}
	if o.Sheet != "" {
		s.Sheet = o.Sheet
	}
	s.StrictCoordinates = s.StrictCoordinates || o.StrictCoordinates
	return s
}
