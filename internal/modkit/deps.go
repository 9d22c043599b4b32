package modkit

import (
	"io"

	"talentmap/internal/platform/config"
	"talentmap/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Out receives human progress output (stdout in the CLI); nil discards
	Out io.Writer
}
