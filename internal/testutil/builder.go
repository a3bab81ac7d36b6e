// Package testutil provides helpers for building enum sets in tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/enumium/enum"
)

// SetBuilder accumulates members and constructs a set in insertion
// order, failing the test on any construction error.
type SetBuilder struct {
	t        *testing.T
	name     string
	registry *enum.Registry
	version  string
	access   enum.AccessLevel
	metadata map[string]any
	values   []valueData
	frozen   bool
}

// NewSetBuilder creates a builder for a set with the given name.
func NewSetBuilder(t *testing.T, name string) *SetBuilder {
	t.Helper()
	return &SetBuilder{t: t, name: name}
}

// WithRegistry attaches the set to a registry.
func (b *SetBuilder) WithRegistry(reg *enum.Registry) *SetBuilder {
	b.registry = reg
	return b
}

// WithVersion sets the version string.
func (b *SetBuilder) WithVersion(version string) *SetBuilder {
	b.version = version
	return b
}

// WithAccessLevel sets the access level.
func (b *SetBuilder) WithAccessLevel(level enum.AccessLevel) *SetBuilder {
	b.access = level
	return b
}

// WithMetadata sets one set-level metadata entry.
func (b *SetBuilder) WithMetadata(key string, value any) *SetBuilder {
	if b.metadata == nil {
		b.metadata = make(map[string]any)
	}
	b.metadata[key] = value
	return b
}

// WithValue adds a member with optional configuration.
func (b *SetBuilder) WithValue(name string, payload any, opts ...ValueOption) *SetBuilder {
	v := valueData{name: name, payload: payload}
	for _, opt := range opts {
		opt(&v)
	}
	b.values = append(b.values, v)
	return b
}

// Frozen freezes the set after all members are added.
func (b *SetBuilder) Frozen() *SetBuilder {
	b.frozen = true
	return b
}

// Build constructs the set, adding members in the order they were
// declared.
func (b *SetBuilder) Build() *enum.Set {
	b.t.Helper()

	opts := make([]enum.Option, 0)
	if b.registry != nil {
		opts = append(opts, enum.WithRegistry(b.registry))
	}
	if b.version != "" {
		opts = append(opts, enum.WithVersion(b.version))
	}
	if b.access != 0 {
		opts = append(opts, enum.WithAccessLevel(b.access))
	}
	if b.metadata != nil {
		opts = append(opts, enum.WithMetadata(b.metadata))
	}

	s, err := enum.New(b.name, opts...)
	require.NoError(b.t, err)

	for _, v := range b.values {
		_, err := s.AddValueWithMetadata(v.name, v.payload, v.metadata)
		require.NoError(b.t, err)
	}

	if b.frozen {
		s.Freeze()
	}
	return s
}
