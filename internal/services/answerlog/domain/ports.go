package domain

import "context"

// Recorder persists events. Callers bind it to the transaction that mutates
// the matching progress rows so history and state commit together
type Recorder interface {
	Insert(ctx context.Context, events []Event) error
}

// Sink receives committed events best-effort; failures must not propagate
// to the caller's request
type Sink interface {
	Publish(ctx context.Context, events []Event)
}
