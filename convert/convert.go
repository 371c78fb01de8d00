// Package convert rewrites quoted numeric identifier fields in decoded
// JSON values into unquoted integer literals.
package convert

// DefaultKeys are the object keys converted when Config.Keys is empty.
var DefaultKeys = []string{"id", "start", "end"}

// Config controls which object keys the Converter rewrites.
type Config struct {
	Keys []string
}

// Converter rewrites eligible target fields to integer literals.
type Converter struct {
	keys map[string]bool
}

// New creates a Converter from the given config.
func New(cfg Config) *Converter {
	keys := cfg.Keys
	if len(keys) == 0 {
		keys = DefaultKeys
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return &Converter{keys: set}
}

// Convert rewrites every eligible target field in v and returns the
// converted value along with the number of fields rewritten. Maps and
// slices are mutated in place; structure, order, and length are
// preserved. Convert is idempotent.
//
// A target field whose value is itself a map or slice is not converted
// but is recursed into; only scalar values under target keys are
// eligible.
func (c *Converter) Convert(v any) (any, int) {
	switch val := v.(type) {
	case map[string]any:
		n := 0
		for k, child := range val {
			if c.keys[k] {
				if lit, ok := coerce(child); ok {
					val[k] = lit
					n++
					continue
				}
			}
			converted, m := c.Convert(child)
			val[k] = converted
			n += m
		}
		return val, n
	case []any:
		n := 0
		for i, child := range val {
			converted, m := c.Convert(child)
			val[i] = converted
			n += m
		}
		return val, n
	default:
		return v, 0
	}
}
