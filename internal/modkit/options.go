package modkit

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name  string
	ports []any
}

// WithName sets a module name used in logs
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPorts injects a port implementation the module would otherwise build itself.
// Repeatable; the module picks what it recognizes by type
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = append(c.ports, p) }
}
