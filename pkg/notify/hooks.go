package notify

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Kinds of change events emitted by bindings.
const (
	KindWrite     = "write"
	KindSelect    = "select"
	KindToggle    = "toggle"
	KindSelectAll = "select-all"
)

// Event describes one binding mutation that can be fanned out to hooks.
// Binding IDs are stringly-typed to avoid coupling call sites to specific
// UUID types.
type Event struct {
	Binding    string
	Path       string
	Kind       string
	Previous   any
	Value      any
	Snapshot   map[string]any
	OccurredAt time.Time
}

// Hook receives normalized change events.
type Hook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc allows plain functions to satisfy Hook.
type HookFunc func(ctx context.Context, event Event) error

// Notify dispatches to the underlying function.
func (fn HookFunc) Notify(ctx context.Context, event Event) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, event)
}

// Hooks fans out events to zero or more hooks.
type Hooks []Hook

// Enabled reports whether there are any hooks to notify.
func (h Hooks) Enabled() bool {
	return len(h) > 0
}

// Notify forwards the event to all hooks, returning a joined error if any
// fail. It normalizes the event and short-circuits when required fields are
// missing.
func (h Hooks) Notify(ctx context.Context, event Event) error {
	if len(h) == 0 {
		return nil
	}

	normalized := NormalizeEvent(event)
	if normalized.Binding == "" || normalized.Kind == "" {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, normalized); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// NormalizeEvent trims identifiers, detaches the snapshot, and ensures a
// timestamp is present.
func NormalizeEvent(event Event) Event {
	normalized := event
	normalized.Binding = strings.TrimSpace(event.Binding)
	normalized.Path = strings.TrimSpace(event.Path)
	normalized.Kind = strings.TrimSpace(event.Kind)
	normalized.Snapshot = cloneSnapshot(event.Snapshot)
	if normalized.OccurredAt.IsZero() {
		normalized.OccurredAt = time.Now()
	}
	return normalized
}

func cloneSnapshot(snapshot map[string]any) map[string]any {
	if snapshot == nil {
		return nil
	}
	out := make(map[string]any, len(snapshot))
	for key, value := range snapshot {
		out[key] = value
	}
	return out
}
