package enum

import (
	"fmt"

	"github.com/zjrosen/enumium/internal/log"
)

// Plugin is a named, invocable extension attached to a Set or shared
// through a Registry. Execute receives the owning set plus the caller's
// arguments.
type Plugin interface {
	Execute(s *Set, args ...any) (any, error)
}

// PluginFunc adapts a bare function into a Plugin.
type PluginFunc func(s *Set, args ...any) (any, error)

// Execute implements Plugin.
func (f PluginFunc) Execute(s *Set, args ...any) (any, error) {
	return f(s, args...)
}

// RegisterPlugin attaches a plugin to this set under name. A nil plugin
// fails with ErrInvalidPlugin. Re-registering a name replaces the
// earlier plugin.
func (s *Set) RegisterPlugin(name string, p Plugin) error {
	if p == nil {
		return fmt.Errorf("%w: %q is nil", ErrInvalidPlugin, name)
	}
	s.plugins[name] = p
	log.Debug(log.CatPlugin, "plugin registered", "set", s.name, "name", name)
	return nil
}

// Plugin returns the plugin registered under name. The set's local
// plugins are consulted first, then the attached registry's shared
// plugins (which include the built-ins).
func (s *Set) Plugin(name string) (Plugin, bool) {
	if p, ok := s.plugins[name]; ok {
		return p, true
	}
	if s.registry != nil {
		return s.registry.Plugin(name)
	}
	return nil, false
}

// ExecutePlugin invokes the named plugin with this set and the given
// arguments. Fails with ErrPluginNotFound if no local or shared plugin
// carries the name.
func (s *Set) ExecutePlugin(name string, args ...any) (any, error) {
	p, ok := s.Plugin(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrPluginNotFound, name, s.name)
	}
	return p.Execute(s, args...)
}
