package enum

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/zjrosen/enumium/internal/cachemanager"
	"github.com/zjrosen/enumium/internal/log"
)

// namePattern is the identifier rule for set and value names.
var namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// DefaultVersion is the version assigned to sets constructed without
// WithVersion.
const DefaultVersion = "1.0.0"

// Set is a named, insertion-ordered collection of Values.
type Set struct {
	dispatcher

	id       string
	name     string
	values   map[string]*Value
	ordered  []*Value
	metadata map[string]any
	plugins  map[string]Plugin
	frozen   bool
	version  string
	access   AccessLevel
	cache    *cachemanager.Cache
	stats    Stats
	registry *Registry
}

// New constructs an empty Set. The name must match
// [a-zA-Z_][a-zA-Z0-9_]*; anything else fails with ErrInvalidName.
// Initial values supplied via WithValues are added through the normal
// AddValue path, so they fire value_added events and bump counters.
func New(name string, opts ...Option) (*Set, error) {
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	cfg := settings{version: DefaultVersion, access: AccessPublic}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Set{
		id:       uuid.NewString(),
		name:     name,
		values:   make(map[string]*Value),
		metadata: copyMetadata(cfg.metadata),
		plugins:  make(map[string]Plugin),
		version:  cfg.version,
		access:   cfg.access,
		cache:    cachemanager.New(name),
		registry: cfg.registry,
	}

	if s.registry != nil {
		s.registry.Register(s)
	}

	for n, payload := range cfg.values {
		if _, err := s.AddValue(n, payload); err != nil {
			return nil, err
		}
	}

	log.Debug(log.CatEnum, "set created", "name", name, "members", len(s.ordered))
	return s, nil
}

// Name returns the set's name.
func (s *Set) Name() string {
	return s.name
}

// ID returns the best-effort unique instance identifier.
func (s *Set) ID() string {
	return s.id
}

// Frozen reports whether mutation is blocked.
func (s *Set) Frozen() bool {
	return s.frozen
}

// Len returns the member count.
func (s *Set) Len() int {
	return len(s.ordered)
}

// AddValue creates a member with the given name and payload and appends
// it to the set. Fails with ErrFrozen on a frozen set, ErrInvalidName if
// the name does not match the identifier pattern, and ErrDuplicateName
// if the name is already present. Emits a value_added event on success.
func (s *Set) AddValue(name string, payload any) (*Value, error) {
	return s.AddValueWithMetadata(name, payload, nil)
}

// AddValueWithMetadata is AddValue with initial member metadata.
func (s *Set) AddValueWithMetadata(name string, payload any, metadata map[string]any) (*Value, error) {
	if s.frozen {
		return nil, fmt.Errorf("%w: cannot add %q to %s", ErrFrozen, name, s.name)
	}
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, exists := s.values[name]; exists {
		return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateName, name, s.name)
	}

	v := newValue(name, payload, s.name, s, metadata)
	s.values[name] = v
	s.ordered = append(s.ordered, v)
	s.stats.Creations++
	s.Trigger(EventValueAdded, map[string]any{"name": name, "value": payload})
	log.Debug(log.CatEnum, "value added", "set", s.name, "name", name)
	return v, nil
}

// RemoveValue removes the named member, preserving the relative order of
// the remaining members. Removing from a frozen set fails with
// ErrFrozen. An absent name is a no-op returning (false, nil). Emits a
// value_removed event on success.
func (s *Set) RemoveValue(name string) (bool, error) {
	if s.frozen {
		return false, fmt.Errorf("%w: cannot remove %q from %s", ErrFrozen, name, s.name)
	}
	v, exists := s.values[name]
	if !exists {
		return false, nil
	}

	delete(s.values, name)
	for i, member := range s.ordered {
		if member == v {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
	s.stats.Modifications++
	s.Trigger(EventValueRemoved, map[string]any{"name": name, "value": v.payload})
	log.Debug(log.CatEnum, "value removed", "set", s.name, "name", name)
	return true, nil
}

// Metadata returns the set-level metadata stored under key.
func (s *Set) Metadata(key string) (any, bool) {
	m, ok := s.metadata[key]
	return m, ok
}

// MetadataMap returns a deep copy of all set-level metadata.
func (s *Set) MetadataMap() map[string]any {
	return copyMetadata(s.metadata)
}

// SetMetadata stores set-level metadata and emits a metadata_changed
// event. Fails with ErrFrozen while the set is frozen.
func (s *Set) SetMetadata(key string, data any) error {
	if s.frozen {
		return fmt.Errorf("%w: cannot set metadata %q on %s", ErrFrozen, key, s.name)
	}
	s.metadata[key] = data
	s.Trigger(EventMetadataChanged, map[string]any{"key": key, "value": data})
	return nil
}

// Version returns the informational version string.
func (s *Set) Version() string {
	return s.version
}

// SetVersion replaces the version string and emits a version_changed
// event carrying the old and new versions.
func (s *Set) SetVersion(version string) {
	old := s.version
	s.version = version
	s.Trigger(EventVersionChanged, map[string]any{"from": old, "to": version})
}

// Freeze blocks structural and metadata mutation, cascades to every
// member, and emits a frozen event.
func (s *Set) Freeze() {
	s.frozen = true
	for _, v := range s.ordered {
		v.Freeze()
	}
	s.Trigger(EventFrozen, nil)
}

// Unfreeze restores mutability, cascades to every member, and emits a
// thawed event.
func (s *Set) Unfreeze() {
	s.frozen = false
	for _, v := range s.ordered {
		v.Unfreeze()
	}
	s.Trigger(EventThawed, nil)
}

// Equals reports whether other has the same name, the same member count,
// and a structurally equal counterpart (by Value.Equals) for every
// member, matched by name.
func (s *Set) Equals(other *Set) bool {
	if other == nil {
		return false
	}
	if s.name != other.name || len(s.values) != len(other.values) {
		return false
	}
	for name, v := range s.values {
		counterpart, ok := other.values[name]
		if !ok || !v.Equals(counterpart) {
			return false
		}
	}
	return true
}

// String renders the set as a deterministic multi-line listing:
//
//	Enum Color {
//	  Color.Red = 1
//	}
func (s *Set) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Enum %s {\n", s.name)
	for _, v := range s.ordered {
		fmt.Fprintf(&b, "  %s\n", v.Describe())
	}
	b.WriteString("}")
	return b.String()
}
