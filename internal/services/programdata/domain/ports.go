package domain

import (
	"context"

	"talentmap/internal/core/countries"
)

// ScholarReaderPort loads the scholar roster
type ScholarReaderPort interface {
	LoadScholars(ctx context.Context) (Scholars, LoadStats, error)
}

// ProgramReaderPort loads per-country program flags
type ProgramReaderPort interface {
	LoadPrograms(ctx context.Context) (Programs, LoadStats, error)
}

// WriterPort persists the output document, returning bytes written
type WriterPort interface {
	Write(ctx context.Context, doc Document) (int, error)
	Path() string
}

// Gazetteer normalizes country names and resolves coordinates (*countries.Table satisfies it)
type Gazetteer interface {
	Normalize(raw string) string
	Lookup(name string) (countries.Coordinates, bool)
	Unmapped(names []string) []string
}

// RunnerPort is the external port for a build run
type RunnerPort interface {
	Run(ctx context.Context) (Summary, error)
}
