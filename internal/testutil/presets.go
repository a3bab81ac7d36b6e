package testutil

import (
	"testing"

	"github.com/zjrosen/enumium/enum"
)

// Colors builds the canonical three-member color set used across tests:
// Red=1, Green=2, Blue=3.
func Colors(t *testing.T, opts ...func(*SetBuilder)) *enum.Set {
	t.Helper()
	b := NewSetBuilder(t, "Color").
		WithValue("Red", 1).
		WithValue("Green", 2).
		WithValue("Blue", 3)
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Weekdays builds a seven-member set of day names to day numbers.
func Weekdays(t *testing.T) *enum.Set {
	t.Helper()
	return NewSetBuilder(t, "Weekday").
		WithValue("Monday", 1).
		WithValue("Tuesday", 2).
		WithValue("Wednesday", 3).
		WithValue("Thursday", 4).
		WithValue("Friday", 5).
		WithValue("Saturday", 6).
		WithValue("Sunday", 7).
		Build()
}

// StatusCodes builds a set with string payloads and member metadata.
func StatusCodes(t *testing.T) *enum.Set {
	t.Helper()
	return NewSetBuilder(t, "Status").
		WithValue("OK", "200", WithValueMetadata("class", "success")).
		WithValue("NotFound", "404", WithValueMetadata("class", "client_error")).
		WithValue("Internal", "500", WithValueMetadata("class", "server_error")).
		Build()
}

// InRegistry returns a builder option attaching the preset to reg.
func InRegistry(reg *enum.Registry) func(*SetBuilder) {
	return func(b *SetBuilder) {
		b.WithRegistry(reg)
	}
}
