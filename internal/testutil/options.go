package testutil

// valueData holds all data for a member to be added.
type valueData struct {
	name     string
	payload  any
	metadata map[string]any
}

// ValueOption configures a member during builder setup.
type ValueOption func(*valueData)

// WithValueMetadata sets one metadata entry on the member.
func WithValueMetadata(key string, value any) ValueOption {
	return func(v *valueData) {
		if v.metadata == nil {
			v.metadata = make(map[string]any)
		}
		v.metadata[key] = value
	}
}
