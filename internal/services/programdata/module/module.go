// Package module implements the programdata module
package module

import (
	"talentmap/internal/core/countries"
	"talentmap/internal/modkit"
	"talentmap/internal/platform/config"
	perr "talentmap/internal/platform/errors"
	"talentmap/internal/services/programdata/domain"
	"talentmap/internal/services/programdata/repo"
	"talentmap/internal/services/programdata/service"
	"talentmap/internal/services/programdata/writer"
)

// Ports exposed by the programdata module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps     modkit.Deps
	settings config.Settings
	ports    Ports
}

// New constructs the programdata module from TALENTMAP_* settings plus overrides.
// Ports passed via modkit.WithPorts (a Gazetteer, loaders or a writer) replace the defaults
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("programdata"),
	}, opts...)...)

	s, err := config.Load(deps.Cfg)
	if err != nil {
		return nil, err
	}
	s = overrides.apply(s)
	if err := config.Validate(s); err != nil {
		return nil, err
	}

	gaz, ok := modkit.Port[domain.Gazetteer](b)
	if !ok {
		gaz = countries.Default()
	}
	scholars, ok := modkit.Port[domain.ScholarReaderPort](b)
	if !ok {
		scholars = repo.NewScholars(repo.Source{Path: s.ScholarsPath(), Sheet: s.Sheet}, gaz)
	}
	programs, ok := modkit.Port[domain.ProgramReaderPort](b)
	if !ok {
		programs = repo.NewPrograms(repo.Source{Path: s.ProgramsPath(), Sheet: s.Sheet}, gaz)
	}
	w, ok := modkit.Port[domain.WriterPort](b)
	if !ok {
		w = writer.New(s.OutputPath())
	}

	runner := service.New(scholars, programs, w, gaz, service.Config{
		DataDir:           s.DataDir,
		StrictCoordinates: s.StrictCoordinates,
	}, deps.Out)

	deps.Log.Debug().
		Str("module", b.Name).
		Str("scholars", s.ScholarsPath()).
		Str("programs", s.ProgramsPath()).
		Str("output", s.OutputPath()).
		Bool("strict_coordinates", s.StrictCoordinates).
		Msg("module ready")

	return &Module{deps: deps, settings: s, ports: Ports{Runner: runner}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "programdata" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Settings returns the effective settings
func (m *Module) Settings() config.Settings { return m.settings }

// MustRunner returns the build runner or panics if the module was not built by New
func (m *Module) MustRunner() domain.RunnerPort {
	p, ok := modkit.PortsOf[Ports](m)
	if !ok || p.Runner == nil {
		panic(perr.New(perr.ErrorCodeUnknown, "programdata module: runner not wired"))
	}
	return p.Runner
}
