// Package config handles application configuration via environment variables
package config

import (
	"os"
	"strconv"
	"strings"

	"talentmap/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a namespaced view over environment variables (e.g., "TALENTMAP_")
// Use New() for global access, or Prefix("TALENTMAP_") for module scopes.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("TALENTMAP_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	if v == "" {
		return def
	}
	return v
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := strings.TrimSpace(os.Getenv(c.key(key)))
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// dotenvLoad is the .env loader (seam for tests)
var dotenvLoad = godotenv.Load

// LoadDotenv reads KEY=VALUE pairs from files (default ".env") into the process env.
// Variables already set win. A missing file is not an error; a malformed one is
func LoadDotenv(files ...string) error {
	paths := files
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	present := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		logger.Named("config").Debug().Strs("files", paths).Msg("no .env file found")
		return nil
	}
	return dotenvLoad(present...)
}
