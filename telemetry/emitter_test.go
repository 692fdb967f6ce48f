package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memoryStore struct {
	events []Event
	err    error
}

func (s *memoryStore) AppendEvent(ctx context.Context, evt Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, evt)
	return nil
}

func TestEmitterNilStoreNoOp(t *testing.T) {
	emitter := NewEmitter(nil)
	if err := emitter.Emit(context.Background(), Event{Type: "tables_built"}); err != nil {
		t.Fatalf("emit with nil store: %v", err)
	}

	var nilEmitter *Emitter
	if err := nilEmitter.Emit(context.Background(), Event{Type: "tables_built"}); err != nil {
		t.Fatalf("emit on nil emitter: %v", err)
	}
}

func TestEmitterDefaults(t *testing.T) {
	store := &memoryStore{}
	emitter := NewEmitter(store)
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	emitter.clock = func() time.Time { return now }

	if err := emitter.Emit(context.Background(), Event{RunID: "run-1", Type: "tables_built"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(store.events) != 1 {
		t.Fatalf("stored %d events, want 1", len(store.events))
	}

	evt := store.events[0]
	if evt.Severity != SeverityInfo {
		t.Errorf("severity = %q, want %q", evt.Severity, SeverityInfo)
	}
	if !evt.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", evt.Timestamp, now)
	}
}

func TestEmitterKeepsExplicitFields(t *testing.T) {
	store := &memoryStore{}
	emitter := NewEmitter(store)

	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	evt := Event{
		RunID:     "run-2",
		Type:      "access_rules",
		Severity:  SeverityError,
		Message:   "rule references unknown location",
		Timestamp: stamp,
	}
	if err := emitter.Emit(context.Background(), evt); err != nil {
		t.Fatalf("emit: %v", err)
	}

	got := store.events[0]
	if got.Severity != SeverityError {
		t.Errorf("severity = %q, want %q", got.Severity, SeverityError)
	}
	if !got.Timestamp.Equal(stamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, stamp)
	}
}

func TestEmitterPropagatesStoreError(t *testing.T) {
	wantErr := errors.New("append failed")
	emitter := NewEmitter(&memoryStore{err: wantErr})

	if err := emitter.Emit(context.Background(), Event{Type: "tables_built"}); !errors.Is(err, wantErr) {
		t.Fatalf("emit error = %v, want %v", err, wantErr)
	}
}
