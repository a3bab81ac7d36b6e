package enum

import (
	"reflect"
	"time"
)

// EventType identifies a lifecycle event emitted by a Set or Value.
type EventType string

const (
	EventValueAdded      EventType = "value_added"
	EventValueRemoved    EventType = "value_removed"
	EventMetadataChanged EventType = "metadata_changed"
	EventVersionChanged  EventType = "version_changed"
	EventMigrated        EventType = "migrated"
	EventFrozen          EventType = "frozen"
	EventThawed          EventType = "thawed"
	EventOptimized       EventType = "optimized"
)

// Event is delivered to watchers on lifecycle changes.
type Event struct {
	Type      EventType
	Payload   map[string]any
	Timestamp time.Time
}

// Watcher receives events synchronously, in registration order.
type Watcher func(Event)

// FailureHook observes watcher panics that Trigger swallowed.
// The recovered value is whatever the watcher panicked with.
type FailureHook func(Event, any)

// dispatcher is the shared watcher mechanism behind Set and Value.
// Dispatch is synchronous and never panics outward: a panicking watcher
// is recovered and the remaining watchers still run.
type dispatcher struct {
	watchers []Watcher
	onFail   FailureHook
}

// Watch registers a callback for all events on this instance.
func (d *dispatcher) Watch(w Watcher) {
	if w == nil {
		return
	}
	d.watchers = append(d.watchers, w)
}

// Unwatch removes the first registration of w, matched by function
// identity. Returns true if a watcher was removed.
func (d *dispatcher) Unwatch(w Watcher) bool {
	if w == nil {
		return false
	}
	target := reflect.ValueOf(w).Pointer()
	for i, existing := range d.watchers {
		if reflect.ValueOf(existing).Pointer() == target {
			d.watchers = append(d.watchers[:i], d.watchers[i+1:]...)
			return true
		}
	}
	return false
}

// Watchers returns a copy of the registered watchers in registration order.
func (d *dispatcher) Watchers() []Watcher {
	out := make([]Watcher, len(d.watchers))
	copy(out, d.watchers)
	return out
}

// ClearWatchers removes all registered watchers.
func (d *dispatcher) ClearWatchers() {
	d.watchers = nil
}

// OnWatcherFailure installs a hook observing swallowed watcher panics.
// Passing nil removes the hook.
func (d *dispatcher) OnWatcherFailure(h FailureHook) {
	d.onFail = h
}

// Trigger delivers an event to every watcher. It never fails: watcher
// panics are recovered, reported to the failure hook if one is set, and
// delivery continues with the next watcher.
func (d *dispatcher) Trigger(t EventType, payload map[string]any) {
	if len(d.watchers) == 0 {
		return
	}
	ev := Event{Type: t, Payload: payload, Timestamp: time.Now()}
	for _, w := range d.watchers {
		d.deliver(ev, w)
	}
}

func (d *dispatcher) deliver(ev Event, w Watcher) {
	defer func() {
		if r := recover(); r != nil && d.onFail != nil {
			d.onFail(ev, r)
		}
	}()
	w(ev)
}
