package enum

import (
	"github.com/zjrosen/enumium/internal/log"
)

// ValueSnapshot is the wire shape of a single member. Frozen state and
// the parent reference are not part of the shape and do not survive a
// round trip.
type ValueSnapshot struct {
	Name     string         `json:"name" yaml:"name"`
	Value    any            `json:"value" yaml:"value"`
	EnumType string         `json:"enumTypeName" yaml:"enumTypeName"`
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
	ID       string         `json:"id" yaml:"id"`
}

// SetSnapshot is the wire shape of a whole set. Member order is
// preserved.
type SetSnapshot struct {
	Name     string          `json:"name" yaml:"name"`
	Version  string          `json:"version" yaml:"version"`
	Metadata map[string]any  `json:"metadata" yaml:"metadata"`
	Values   []ValueSnapshot `json:"values" yaml:"values"`
	ID       string          `json:"id" yaml:"id"`
}

// Serialize captures the value's wire shape with deep-copied payload and
// metadata.
func (v *Value) Serialize() ValueSnapshot {
	return ValueSnapshot{
		Name:     v.name,
		Value:    deepCopy(v.payload),
		EnumType: v.enumType,
		Metadata: copyMetadata(v.metadata),
		ID:       v.id,
	}
}

// DeserializeValue reconstructs a fresh Value from a snapshot, restoring
// the original identifier. The result has no parent and is not frozen.
func DeserializeValue(snap ValueSnapshot) *Value {
	v := newValue(snap.Name, deepCopy(snap.Value), snap.EnumType, nil, snap.Metadata)
	if snap.ID != "" {
		v.id = snap.ID
	}
	return v
}

// Serialize captures the set's wire shape in member order and bumps the
// serializations counter.
func (s *Set) Serialize() SetSnapshot {
	s.stats.Serializations++
	values := make([]ValueSnapshot, len(s.ordered))
	for i, v := range s.ordered {
		values[i] = v.Serialize()
	}
	log.Debug(log.CatSerial, "set serialized", "name", s.name, "members", len(values))
	return SetSnapshot{
		Name:     s.name,
		Version:  s.version,
		Metadata: copyMetadata(s.metadata),
		Values:   values,
		ID:       s.id,
	}
}

// Deserialize reconstructs a set from a snapshot. Members are inserted
// directly into the internal structures, bypassing the duplicate and
// frozen checks of AddValue and emitting no value_added events; snapshot
// data that AddValue would reject still deserializes. Only the set name
// itself is validated (New enforces the identifier pattern). Counters
// start at zero on the new instance.
func Deserialize(snap SetSnapshot, opts ...Option) (*Set, error) {
	s, err := New(snap.Name, append(opts, WithVersion(snap.Version))...)
	if err != nil {
		return nil, err
	}
	if snap.ID != "" {
		s.id = snap.ID
	}
	s.metadata = copyMetadata(snap.Metadata)
	for _, vs := range snap.Values {
		v := newValue(vs.Name, deepCopy(vs.Value), vs.EnumType, s, vs.Metadata)
		if vs.ID != "" {
			v.id = vs.ID
		}
		s.values[vs.Name] = v
		s.ordered = append(s.ordered, v)
	}
	s.stats = Stats{}
	log.Debug(log.CatSerial, "set deserialized", "name", snap.Name, "members", len(snap.Values))
	return s, nil
}
