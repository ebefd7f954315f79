package notify

import "context"

// RenderFunc schedules a host re-render with the snapshot captured by the
// triggering mutation. Hosts must tolerate redundant requests; every mutation
// produces one even when no visual difference results.
type RenderFunc func(snapshot map[string]any)

// RenderTrigger adapts a host render scheduler into a Hook. The snapshot
// handed to the host is the shallow copy captured at notification time, so
// identity-based change detection observes each write.
func RenderTrigger(render RenderFunc) Hook {
	return HookFunc(func(_ context.Context, event Event) error {
		if render == nil {
			return nil
		}
		render(event.Snapshot)
		return nil
	})
}
