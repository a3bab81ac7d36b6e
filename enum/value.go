package enum

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Value represents one named constant belonging to a Set.
// Values are created by Set.AddValue or by deserialization, never
// directly.
type Value struct {
	dispatcher

	id       string
	name     string
	payload  any
	enumType string
	metadata map[string]any
	parent   *Set
	frozen   bool
}

func newValue(name string, payload any, enumType string, parent *Set, metadata map[string]any) *Value {
	return &Value{
		id:       uuid.NewString(),
		name:     name,
		payload:  payload,
		enumType: enumType,
		parent:   parent,
		metadata: copyMetadata(metadata),
	}
}

// Name returns the value's identifier within its owning set.
func (v *Value) Name() string {
	return v.name
}

// Payload returns the underlying constant data.
func (v *Value) Payload() any {
	return v.payload
}

// EnumType returns the name of the owning set at creation time.
// This is denormalized, not a live reference; see Parent.
func (v *Value) EnumType() string {
	return v.enumType
}

// Parent returns the owning set, or nil for deserialized values.
func (v *Value) Parent() *Set {
	return v.parent
}

// ID returns the best-effort unique instance identifier.
func (v *Value) ID() string {
	return v.id
}

// Frozen reports whether metadata mutation is blocked.
func (v *Value) Frozen() bool {
	return v.frozen
}

// IsValid reports whether name, payload, and owning type name are all set.
func (v *Value) IsValid() bool {
	return v.name != "" && v.payload != nil && v.enumType != ""
}

// Describe renders the value as "<enumType>.<name> = <payload>".
func (v *Value) Describe() string {
	return fmt.Sprintf("%s.%s = %v", v.enumType, v.name, v.payload)
}

// Metadata returns the metadata stored under key.
func (v *Value) Metadata(key string) (any, bool) {
	m, ok := v.metadata[key]
	return m, ok
}

// MetadataMap returns a deep copy of all metadata.
func (v *Value) MetadataMap() map[string]any {
	return copyMetadata(v.metadata)
}

// SetMetadata stores data under key and emits a metadata_changed event.
// Fails with ErrFrozen while the value is frozen.
func (v *Value) SetMetadata(key string, data any) error {
	if v.frozen {
		return fmt.Errorf("%w: cannot set metadata %q on %s", ErrFrozen, key, v.name)
	}
	v.metadata[key] = data
	v.Trigger(EventMetadataChanged, map[string]any{"key": key, "value": data})
	return nil
}

// Freeze blocks metadata mutation. Unlike Set.Freeze, no event is emitted.
func (v *Value) Freeze() {
	v.frozen = true
}

// Unfreeze restores metadata mutability.
func (v *Value) Unfreeze() {
	v.frozen = false
}

// Clone returns a new Value with deep-copied payload and metadata, the
// same name, type name, parent reference, and frozen flag. Watchers are
// not carried over; the clone starts with no observers.
func (v *Value) Clone() *Value {
	clone := newValue(v.name, deepCopy(v.payload), v.enumType, v.parent, nil)
	clone.metadata = copyMetadata(v.metadata)
	clone.frozen = v.frozen
	return clone
}

// Equals reports structural equality on (name, payload, enumType).
// A nil argument is never equal. Identity, metadata, and frozen state do
// not participate.
func (v *Value) Equals(other *Value) bool {
	if other == nil {
		return false
	}
	return v.name == other.name &&
		v.enumType == other.enumType &&
		reflect.DeepEqual(v.payload, other.payload)
}
