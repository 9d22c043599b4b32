package modkit

// Built is a plain struct with the fields modules care about
type Built struct {
	Name  string
	Ports []any
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:  c.name,
		Ports: append([]any(nil), c.ports...),
	}
}

// Port returns the last injected port implementing T
func Port[T any](b Built) (t T, ok bool) {
	for i := len(b.Ports) - 1; i >= 0; i-- {
		if v, ok2 := b.Ports[i].(T); ok2 {
			return v, true
		}
	}
	return t, false
}
