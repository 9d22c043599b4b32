// Command talentmap-build merges the scholar roster and program flags into data/programData.json
package main

import (
	"fmt"
	"io"
	"os"

	"talentmap/internal/core/version"
	"talentmap/internal/modkit"
	"talentmap/internal/platform/config"
	perr "talentmap/internal/platform/errors"
	"talentmap/internal/platform/logger"
	pdmod "talentmap/internal/services/programdata/module"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if _, ours := perr.As(err); !ours {
		// cobra usage errors (unexpected args, unknown flags)
		_, _ = fmt.Fprintln(stderr, "Error:", err)
	}
	return perr.ExitCode(err)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "talentmap-build",
		Short: "Build data/programData.json from the scholar and program spreadsheets",
		Long: `talentmap-build reads the BIG scholar roster and the program flag sheet
from the data directory, merges them with the built-in country coordinates,
and writes one JSON record per country.

Run it from the project root. Optional TALENTMAP_* and LOG_* variables
(or a .env file) override file names, the sheet and logging.`,
		Version:       version.Info().String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := build(cmd, stdout)
			if err != nil {
				_, _ = fmt.Fprintf(stdout, "❌ Error during processing: %v\n", err)
			}
			return err
		},
	}
}

func build(cmd *cobra.Command, stdout io.Writer) error {
	dotenvErr := config.LoadDotenv()
	logger.Init(logger.FromEnv())
	l := logger.Named("talentmap-build")
	if dotenvErr != nil {
		return perr.Wrap(dotenvErr, perr.ErrorCodeValidation, "read .env")
	}

	m, err := pdmod.New(modkit.Deps{
		Log: *l,
		Cfg: config.New().Prefix("TALENTMAP_"),
		Out: stdout,
	}, pdmod.Options{})
	if err != nil {
		l.Error().Err(err).Msg("invalid configuration")
		return err
	}

	sum, err := m.MustRunner().Run(cmd.Context())
	if err != nil {
		ev := l.Error().Err(err).Str("run_id", sum.RunID).Int("exit", perr.ExitCode(err))
		if e, ok := perr.As(err); ok {
			ev = ev.Str("code", e.Code().String()).Str("op", e.Op()).Str("field", e.Field())
		}
		ev.Msg("build failed")
		return err
	}
	return nil
}
