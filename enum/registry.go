package enum

import (
	"fmt"

	"github.com/zjrosen/enumium/internal/log"
)

// Registry indexes sets by name and holds plugins shared by every
// attached set. It replaces the process-wide registries of the original
// design: construct one per application (or per test) and inject it with
// WithRegistry.
//
// Registration is last-wins: a second set registered under the same name
// silently overwrites the earlier entry. Name uniqueness is enforced at
// the member level inside a set, not here.
type Registry struct {
	sets    map[string]*Set
	plugins map[string]Plugin
}

// NewRegistry creates an empty registry with the built-in plugins
// (Validation, Math, Search, Export) pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		sets:    make(map[string]*Set),
		plugins: make(map[string]Plugin),
	}
	registerBuiltins(r)
	return r
}

// Register indexes the set under its name, overwriting any earlier set
// of the same name. A nil set is ignored.
func (r *Registry) Register(s *Set) {
	if s == nil {
		return
	}
	if _, exists := r.sets[s.name]; exists {
		log.Warn(log.CatRegistry, "overwriting registration", "name", s.name)
	}
	r.sets[s.name] = s
}

// Lookup returns the set registered under name.
func (r *Registry) Lookup(name string) (*Set, bool) {
	s, ok := r.sets[name]
	return s, ok
}

// Sets returns all registered sets. Order is unspecified.
func (r *Registry) Sets() []*Set {
	out := make([]*Set, 0, len(r.sets))
	for _, s := range r.sets {
		out = append(out, s)
	}
	return out
}

// RegisterPlugin makes a plugin available to every set attached to this
// registry. A nil plugin fails with ErrInvalidPlugin.
func (r *Registry) RegisterPlugin(name string, p Plugin) error {
	if p == nil {
		return fmt.Errorf("%w: %q is nil", ErrInvalidPlugin, name)
	}
	r.plugins[name] = p
	log.Debug(log.CatRegistry, "shared plugin registered", "name", name)
	return nil
}

// Plugin returns the shared plugin registered under name.
func (r *Registry) Plugin(name string) (Plugin, bool) {
	p, ok := r.plugins[name]
	return p, ok
}
