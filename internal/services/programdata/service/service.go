// Package service runs the program data build: load both sheets, merge, write
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	perr "talentmap/internal/platform/errors"
	"talentmap/internal/platform/logger"
	dom "talentmap/internal/services/programdata/domain"

	"github.com/google/uuid"
)

// Config holds options for a build run
type Config struct {
	DataDir           string // must exist before any input is read
	StrictCoordinates bool   // fail instead of writing countries without coordinates
}

// seams
var (
	statDir  = os.Stat
	newRunID = uuid.NewString
)

// Service implements dom.RunnerPort
type Service struct {
	Scholars dom.ScholarReaderPort
	Programs dom.ProgramReaderPort
	Writer   dom.WriterPort
	Gaz      dom.Gazetteer
	Cfg      Config

	// Out receives the human progress report; nil discards it
	Out io.Writer
}

// New constructs the build service
func New(
	scholars dom.ScholarReaderPort,
	programs dom.ProgramReaderPort,
	w dom.WriterPort,
	gaz dom.Gazetteer,
	cfg Config,
	out io.Writer,
) *Service {
	if scholars == nil || programs == nil {
		panic("programdata.Service requires both loaders")
	}
	if w == nil {
		panic("programdata.Service requires a non nil writer")
	}
	if gaz == nil {
		panic("programdata.Service requires a gazetteer")
	}
	if out == nil {
		out = io.Discard
	}
	return &Service{Scholars: scholars, Programs: programs, Writer: w, Gaz: gaz, Cfg: cfg, Out: out}
}

var _ dom.RunnerPort = (*Service)(nil)

// Run performs one full build. Nothing is written unless both loads succeed
// (and, in strict mode, every country has coordinates)
func (s *Service) Run(ctx context.Context) (dom.Summary, error) {
	sum := dom.Summary{RunID: newRunID(), OutputPath: s.Writer.Path()}
	ctx = logger.WithRun(ctx, sum.RunID)
	log := logger.C(ctx)

	s.printf("🚀 Starting data processing...\n")

	if err := s.checkDataDir(); err != nil {
		return sum, err
	}

	scholars, st, err := s.Scholars.LoadScholars(logger.WithStage(ctx, "scholars"))
	sum.Scholars = st
	if err != nil {
		return sum, err
	}
	programs, pt, err := s.Programs.LoadPrograms(logger.WithStage(ctx, "programs"))
	sum.Programs = pt
	if err != nil {
		return sum, err
	}

	names := Countries(scholars, programs)
	sum.Countries = len(names)
	s.printf("There are %d countries in total!\n", len(names))

	mctx := logger.WithStage(ctx, "merge")
	sum.Unmapped = s.Gaz.Unmapped(names)
	if len(sum.Unmapped) > 0 {
		logger.C(mctx).Debug().Strs("countries", sum.Unmapped).Msg("countries without coordinates")
		if s.Cfg.StrictCoordinates {
			err := perr.DataQualityf("%d countries have no coordinates: %s",
				len(sum.Unmapped), strings.Join(sum.Unmapped, ", "))
			return sum, perr.WithOp(err, "merge")
		}
	}
	doc := Merge(scholars, programs, s.Gaz)

	n, err := s.Writer.Write(logger.WithStage(ctx, "write"), doc)
	if err != nil {
		return sum, perr.WithOp(err, "write")
	}
	sum.Bytes = n
	s.printf("✅ Wrote %s\n", sum.OutputPath)
	s.printf("📊 Generated data for %d countries\n", len(doc))

	log.Info().
		Str("output", sum.OutputPath).
		Int("countries", sum.Countries).
		Int("unmapped", len(sum.Unmapped)).
		Int("bytes", sum.Bytes).
		Msg("program data build complete")
	s.printf("✨ Data processing completed successfully!\n")
	return sum, nil
}

func (s *Service) checkDataDir() error {
	dir := s.Cfg.DataDir
	fi, err := statDir(dir)
	switch {
	case err == nil && fi.IsDir():
		return nil
	case err == nil:
		return perr.WithField(perr.MissingDirf("%q is not a directory; run from the project root", dir), dir)
	case os.IsNotExist(err):
		return perr.WithField(perr.MissingDirf("%q directory not found; run from the project root", dir), dir)
	default:
		return perr.WithField(perr.Wrapf(err, perr.ErrorCodeMissingDirectory, "stat %q", dir), dir)
	}
}

func (s *Service) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.Out, format, a...)
}
