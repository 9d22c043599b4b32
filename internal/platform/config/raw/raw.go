// Package raw provides a minimal env reader used during bootstrap.
// It has NO dependency on the logger package; the logger reads its own options through it
package raw

import (
	"os"
	"strings"
)

// lookup is the env source (seam for tests)
var lookup = os.LookupEnv

// Conf is a namespaced view over environment variables (e.g. "LOG_", "TALENTMAP_")
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (e.g. "LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key composes the fully-qualified env var name
func (c Conf) Key(k string) string { return c.prefix + k }

// value returns the trimmed env value and whether it was set to something non-blank
func (c Conf) value(k string) (string, bool) {
	v, ok := lookup(c.Key(k))
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Get returns the trimmed env var or def if unset/blank
func (c Conf) Get(key, def string) string {
	if v, ok := c.value(key); ok {
		return v
	}
	return def
}

// GetBool parses a bool-like env ("1|true|yes|on" / "0|false|no|off");
// anything else falls back to def
func (c Conf) GetBool(key string, def bool) bool {
	v, ok := c.value(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
