// Package overlay models the layered-overlay store as an explicit stack
// owned by a single coordinator: stacked layers are pushed, addressed by
// index or ID, and only the topmost layer is visible. Dialog consumers get a
// guard-flag wrapper guaranteeing exactly-once completion.
package overlay

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrLayerIndex indicates an index outside the current stack.
	ErrLayerIndex = errors.New("overlay: layer index out of range")
	// ErrLayerID indicates an identifier no stacked layer carries.
	ErrLayerID = errors.New("overlay: unknown layer id")
	// ErrNilStack indicates a consumer constructed without its stack.
	ErrNilStack = errors.New("overlay: stack is required")
	// ErrNilCompletion indicates a dialog constructed without a completion
	// callback. A dialog with no completion path is a programming error, not
	// a runtime condition to recover from.
	ErrNilCompletion = errors.New("overlay: completion callback is required")
)

// Layer is one stacked overlay entry.
type Layer struct {
	ID      string
	Kind    string
	Payload any
}

// Stack is the coordinator-owned overlay stack. Access goes through its
// public push/remove/peek operations, never through ambient shared state.
type Stack struct {
	mu     sync.Mutex
	layers []Layer
}

// NewStack constructs an empty overlay stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends layer to the top of the stack and returns its index. A layer
// without an ID gets one assigned.
func (s *Stack) Push(layer Layer) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if layer.ID == "" {
		layer.ID = uuid.NewString()
	}
	s.layers = append(s.layers, layer)
	return len(s.layers) - 1
}

// RemoveAt removes the layer at index. Layers above shift down.
func (s *Stack) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.layers) {
		return ErrLayerIndex
	}
	s.layers = append(s.layers[:index], s.layers[index+1:]...)
	return nil
}

// Remove removes the layer carrying id regardless of its current index.
func (s *Stack) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, layer := range s.layers {
		if layer.ID == id {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return nil
		}
	}
	return ErrLayerID
}

// Top returns the topmost layer when the stack is not empty.
func (s *Stack) Top() (Layer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.layers) == 0 {
		return Layer{}, false
	}
	return s.layers[len(s.layers)-1], true
}

// Len returns the number of stacked layers.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.layers)
}

// Visible reports whether the layer at index is the one currently shown.
// Only the topmost layer of the stack is visible.
func (s *Stack) Visible(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.layers) > 0 && index == len(s.layers)-1
}

// Layers returns a defensive copy of the stack, bottom first.
func (s *Stack) Layers() []Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.layers) == 0 {
		return nil
	}
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}
