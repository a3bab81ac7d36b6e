package enum

import "reflect"

// Value returns the member with the given name.
func (s *Set) Value(name string) (*Value, bool) {
	s.stats.Lookups++
	v, ok := s.values[name]
	return v, ok
}

// ValueByPayload returns the first member whose payload structurally
// equals payload. The scan walks the insertion-ordered sequence, so ties
// between members sharing an equal payload resolve to the
// earliest-inserted one.
func (s *Set) ValueByPayload(payload any) (*Value, bool) {
	s.stats.Lookups++
	for _, v := range s.ordered {
		if reflect.DeepEqual(v.payload, payload) {
			return v, true
		}
	}
	return nil, false
}

// HasValue reports whether a member with the given name exists.
func (s *Set) HasValue(name string) bool {
	_, ok := s.Value(name)
	return ok
}

// HasValueByPayload reports whether any member carries the payload.
func (s *Set) HasValueByPayload(payload any) bool {
	_, ok := s.ValueByPayload(payload)
	return ok
}

// Values returns the members in insertion order. The slice is a copy;
// mutating it does not affect the set.
func (s *Set) Values() []*Value {
	out := make([]*Value, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Names returns all member names. Order is unspecified.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.values))
	for name := range s.values {
		out = append(out, name)
	}
	return out
}

// Mapping returns a name-to-payload projection of the members.
func (s *Set) Mapping() map[string]any {
	out := make(map[string]any, len(s.ordered))
	for _, v := range s.ordered {
		out[v.name] = v.payload
	}
	return out
}

// Validate reports whether some member's payload structurally equals
// payload.
func (s *Set) Validate(payload any) bool {
	return s.HasValueByPayload(payload)
}

// Get returns the payload stored under name. This is the read-only
// member accessor counterpart to Matches.
func (s *Set) Get(name string) (any, bool) {
	v, ok := s.Value(name)
	if !ok {
		return nil, false
	}
	return v.payload, true
}

// Matches reports whether payload belongs to the set. Equivalent to
// Validate; provided as the predicate half of the Get/Matches pair.
func (s *Set) Matches(payload any) bool {
	return s.Validate(payload)
}
