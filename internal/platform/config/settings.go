package config

import (
	"path/filepath"

	perr "talentmap/internal/platform/errors"
)

// Default file layout, relative to the working directory
const (
	DefaultDataDir      = "data"
	DefaultScholarsFile = "GTF BIG Talent Scholars.xlsx"
	DefaultProgramsFile = "Program Data.xlsx"
	DefaultOutputFile   = "programData.json"
)

// Settings is the validated configuration of one build run
type Settings struct {
	DataDir           string `json:"data_dir" validate:"required"`
	ScholarsFile      string `json:"scholars_file" validate:"required,sheetext"`
	ProgramsFile      string `json:"programs_file" validate:"required,sheetext"`
	OutputFile        string `json:"output_file" validate:"required,endswith=.json"`
	Sheet             string `json:"sheet" validate:"omitempty,max=31"`
	StrictCoordinates bool   `json:"strict_coordinates"`
}

// Defaults returns the zero-config settings
func Defaults() Settings {
	return Settings{
		DataDir:      DefaultDataDir,
		ScholarsFile: DefaultScholarsFile,
		ProgramsFile: DefaultProgramsFile,
		OutputFile:   DefaultOutputFile,
	}
}

// Load reads TALENTMAP_* overrides on top of Defaults and validates the result
func Load(c Conf) (Settings, error) {
	d := Defaults()
	s := Settings{
		DataDir:           c.MayString("DATA_DIR", d.DataDir),
		ScholarsFile:      c.MayString("SCHOLARS_FILE", d.ScholarsFile),
		ProgramsFile:      c.MayString("PROGRAMS_FILE", d.ProgramsFile),
		OutputFile:        c.MayString("OUTPUT_FILE", d.OutputFile),
		Sheet:             c.MayString("SHEET", ""),
		StrictCoordinates: c.MayBool("STRICT_COORDINATES", false),
	}
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks s with the shared validator and maps the first failure to a Validation error
func Validate(s Settings) error {
	if err := Validator().Validator.Struct(s); err != nil {
		field, msg := ValidationFieldAndMessage(err)
		return perr.WithField(perr.Validationf("invalid settings: %s", msg), field)
	}
	return nil
}

// ScholarsPath is the scholars source path
func (s Settings) ScholarsPath() string { return filepath.Join(s.DataDir, s.ScholarsFile) }

// ProgramsPath is the programs source path
func (s Settings) ProgramsPath() string { return filepath.Join(s.DataDir, s.ProgramsFile) }

// OutputPath is the output document path
func (s Settings) OutputPath() string { return filepath.Join(s.DataDir, s.OutputFile) }
