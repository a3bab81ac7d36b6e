package enum

import (
	"fmt"

	"github.com/zjrosen/enumium/internal/log"
)

// deriveOptions builds the construction options shared by every derived
// set: version and access level carry over, and the derived set joins the
// source's registry when one is attached.
func (s *Set) deriveOptions() []Option {
	opts := []Option{WithVersion(s.version), WithAccessLevel(s.access)}
	if s.registry != nil {
		opts = append(opts, WithRegistry(s.registry))
	}
	return opts
}

// Clone produces a new set named "<name>_Clone" with deep-copied
// metadata and members. Each member is re-added through the normal
// AddValue path, so value_added events fire on the clone and its
// counters reflect the re-adds. The clone starts unfrozen and carries no
// watchers, plugins, or cache entries.
func (s *Set) Clone() *Set {
	clone, err := New(s.name+"_Clone", s.deriveOptions()...)
	if err != nil {
		// Unreachable: a valid name suffixed with "_Clone" stays valid.
		panic(err)
	}
	clone.metadata = copyMetadata(s.metadata)
	for _, v := range s.ordered {
		if _, err := clone.AddValueWithMetadata(v.name, deepCopy(v.payload), v.MetadataMap()); err != nil {
			log.ErrorErr(log.CatEnum, "clone re-add failed", err, "set", s.name, "name", v.name)
		}
	}
	return clone
}

// Compose produces a new set named "<name>_<other.name>_Composed"
// containing all of this set's members followed by any of other's
// members whose name is not already taken. On a name collision this
// set's member wins.
func (s *Set) Compose(other *Set) (*Set, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: compose needs a set", ErrInvalidOperand)
	}

	out, err := New(s.name+"_"+other.name+"_Composed", s.deriveOptions()...)
	if err != nil {
		return nil, err
	}
	for _, v := range s.ordered {
		if _, err := out.AddValueWithMetadata(v.name, deepCopy(v.payload), v.MetadataMap()); err != nil {
			return nil, err
		}
	}
	for _, v := range other.ordered {
		if _, exists := out.values[v.name]; exists {
			continue
		}
		if _, err := out.AddValueWithMetadata(v.name, deepCopy(v.payload), v.MetadataMap()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Inherit produces a new set named "<name>_Inherited" containing
// parent's members first, then this set's members, all added through the
// duplicate-rejecting AddValue path. Consequently a child member sharing
// a name with a parent member does NOT override it: Inherit fails with
// ErrDuplicateName. This collision behavior is deliberate and kept from
// the original design.
func (s *Set) Inherit(parent *Set) (*Set, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: inherit needs a parent set", ErrInvalidOperand)
	}

	out, err := New(s.name+"_Inherited", s.deriveOptions()...)
	if err != nil {
		return nil, err
	}
	for _, v := range parent.ordered {
		if _, err := out.AddValueWithMetadata(v.name, deepCopy(v.payload), v.MetadataMap()); err != nil {
			return nil, err
		}
	}
	for _, v := range s.ordered {
		if _, err := out.AddValueWithMetadata(v.name, deepCopy(v.payload), v.MetadataMap()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Migrate is a versioning placeholder: it produces a clone carrying
// toVersion and emits a migrated event on the original set. No value
// transformation occurs.
func (s *Set) Migrate(fromVersion, toVersion string) *Set {
	clone := s.Clone()
	clone.version = toVersion
	s.Trigger(EventMigrated, map[string]any{"fromVersion": fromVersion, "toVersion": toVersion})
	log.Info(log.CatEnum, "migrated", "set", s.name, "from", fromVersion, "to", toVersion)
	return clone
}
