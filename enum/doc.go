// Package enum implements named, typed constant collections with runtime
// introspection.
//
// The two core types are Set (a named, insertion-ordered collection of
// constants) and Value (one named constant with an arbitrary payload and
// metadata). Sets support freeze semantics, synchronous change
// notification through watchers, a plugin extension mechanism,
// serialization snapshots, and clone/compose/inherit composition.
//
// # Core Types
//
// Set holds members in insertion order and enforces name uniqueness.
// Construct with New, populate with AddValue, query with Value,
// ValueByPayload, and the Get/Matches accessor pair.
//
// Value is created only by a Set (via AddValue or deserialization) and
// belongs to exactly one Set. Equality between values is structural
// (name, payload, owning type name), not identity.
//
// Registry is an explicit, injectable index of sets by name with a shared
// plugin table. Pass one via WithRegistry; there is no process-wide
// registry, so tests can instantiate isolated registries. Registering a
// second set under the same name overwrites the earlier entry.
//
// # Events
//
// Watchers run synchronously in registration order. A watcher that panics
// is recovered and discarded so one misbehaving observer cannot block
// delivery to the rest; install a FailureHook to observe dropped panics.
//
// # Concurrency
//
// Set, Value, and Registry are not synchronized. The library assumes
// exclusive single-goroutine access; callers sharing a set across
// goroutines must provide their own locking.
package enum
