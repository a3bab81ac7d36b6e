package enum

// settings accumulates construction options for New.
type settings struct {
	values   map[string]any
	metadata map[string]any
	version  string
	access   AccessLevel
	registry *Registry
}

// Option configures a Set during construction.
type Option func(*settings)

// WithValues seeds the set with an initial name-to-payload mapping.
// Iteration order over the mapping is unspecified, so member insertion
// order is not deterministic; add values individually when order matters.
func WithValues(values map[string]any) Option {
	return func(s *settings) {
		s.values = values
	}
}

// WithMetadata sets the set-level metadata.
func WithMetadata(metadata map[string]any) Option {
	return func(s *settings) {
		s.metadata = metadata
	}
}

// WithVersion sets the informational version string (default "1.0.0").
func WithVersion(version string) Option {
	return func(s *settings) {
		s.version = version
	}
}

// WithAccessLevel sets the access level (default AccessPublic).
func WithAccessLevel(level AccessLevel) Option {
	return func(s *settings) {
		s.access = level
	}
}

// WithRegistry registers the new set into reg under its name,
// overwriting any earlier set of the same name. Derived sets (Clone,
// Compose, Inherit, Migrate) register into the same registry.
func WithRegistry(reg *Registry) Option {
	return func(s *settings) {
		s.registry = reg
	}
}
