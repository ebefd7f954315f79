package bind

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goliatone/go-binding/pkg/notify"
)

// Trace captures the mutation history observed for a single binding.
type Trace struct {
	Binding   string     `json:"binding"`
	Path      string     `json:"path,omitempty"`
	Revisions []Revision `json:"revisions"`
}

// Revision details one recorded mutation.
type Revision struct {
	Kind       string    `json:"kind"`
	Previous   any       `json:"previous,omitempty"`
	Value      any       `json:"value,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated
// via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

// TraceRecorder is a notify hook accumulating the revisions of one binding.
// When binding is empty the recorder accepts events from any binding and
// adopts the first identifier it sees.
type TraceRecorder struct {
	trace Trace
}

// NewTraceRecorder constructs a recorder scoped to binding.
func NewTraceRecorder(binding string) *TraceRecorder {
	return &TraceRecorder{trace: Trace{Binding: binding}}
}

// Notify implements notify.Hook.
func (r *TraceRecorder) Notify(_ context.Context, event notify.Event) error {
	if r.trace.Binding == "" {
		r.trace.Binding = event.Binding
	}
	if event.Binding != r.trace.Binding {
		return nil
	}
	if r.trace.Path == "" {
		r.trace.Path = event.Path
	}
	r.trace.Revisions = append(r.trace.Revisions, Revision{
		Kind:       event.Kind,
		Previous:   event.Previous,
		Value:      event.Value,
		OccurredAt: event.OccurredAt,
	})
	return nil
}

// Trace returns the accumulated trace.
func (r *TraceRecorder) Trace() Trace {
	out := r.trace
	if len(r.trace.Revisions) > 0 {
		out.Revisions = make([]Revision, len(r.trace.Revisions))
		copy(out.Revisions, r.trace.Revisions)
	}
	return out
}
