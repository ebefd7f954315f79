package overlay

import "github.com/google/uuid"

// Result is the terminal outcome of a dialog.
type Result struct {
	Confirmed bool
	Dismissed bool
	Value     any
}

// CompletionFunc receives the dialog's terminal result. It fires exactly
// once, whichever of confirm, cancel, or forced dismissal happens first.
type CompletionFunc func(Result)

// Dialog is a thin consumer of the overlay stack: it pushes one layer on
// construction and guards the open->closed transition so the completion
// callback cannot fire twice.
type Dialog struct {
	stack    *Stack
	layerID  string
	complete CompletionFunc
	closed   bool
}

// NewDialog pushes a dialog layer onto stack. The completion callback is
// required eagerly; its absence is a construction failure, never deferred.
func NewDialog(stack *Stack, payload any, complete CompletionFunc) (*Dialog, error) {
	if stack == nil {
		return nil, ErrNilStack
	}
	if complete == nil {
		return nil, ErrNilCompletion
	}
	// The ID is assigned before the push; construction never reads the
	// stack back.
	layer := Layer{ID: uuid.NewString(), Kind: "dialog", Payload: payload}
	stack.Push(layer)
	return &Dialog{
		stack:    stack,
		layerID:  layer.ID,
		complete: complete,
	}, nil
}

// Confirm closes the dialog with a confirmed result. It reports whether this
// call performed the open->closed transition.
func (d *Dialog) Confirm(value any) bool {
	return d.close(Result{Confirmed: true, Value: value})
}

// Cancel closes the dialog with an explicit non-confirmed result.
func (d *Dialog) Cancel() bool {
	return d.close(Result{})
}

// Dismiss closes the dialog on forced teardown (host navigation or unmount).
// The completion callback fires with no result payload.
func (d *Dialog) Dismiss() bool {
	return d.close(Result{Dismissed: true})
}

// Closed reports whether the dialog already transitioned to closed.
func (d *Dialog) Closed() bool {
	return d.closed
}

// LayerID returns the stack layer the dialog occupies.
func (d *Dialog) LayerID() string {
	return d.layerID
}

func (d *Dialog) close(result Result) bool {
	if d.closed {
		return false
	}
	d.closed = true
	_ = d.stack.Remove(d.layerID)
	d.complete(result)
	return true
}
