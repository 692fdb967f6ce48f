// Package telemetry records operational events from world setup and rule
// installation. The store backing the emitter is supplied by the caller;
// a nil store makes every emit a no-op, so the core never depends on an
// observability surface being present.
package telemetry

import (
	"context"
	"time"
)

// Severity describes the telemetry severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Event is one generation-run telemetry record.
type Event struct {
	RunID     string
	Type      string
	Severity  Severity
	Message   string
	Metadata  map[string]string
	Timestamp time.Time
}

// EventStore persists telemetry events.
type EventStore interface {
	AppendEvent(ctx context.Context, evt Event) error
}

// Emitter records generation telemetry events.
type Emitter struct {
	store EventStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store EventStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.Severity == "" {
		evt.Severity = SeverityInfo
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendEvent(ctx, evt)
}
