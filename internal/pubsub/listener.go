package pubsub

import "context"

// Listener wraps a broker subscription behind a plain receive channel.
// The subscription is cleaned up when the context is cancelled.
type Listener[T any] struct {
	ch <-chan Event[T]
}

// NewListener subscribes to the broker for the lifetime of ctx.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ch: broker.Subscribe(ctx)}
}

// Events returns the subscription channel. It is closed when the
// listener's context is cancelled or the broker shuts down.
func (l *Listener[T]) Events() <-chan Event[T] {
	return l.ch
}
