package overlay

import (
	"errors"
	"testing"
)

func TestStackPushAssignsIDsAndIndexes(t *testing.T) {
	stack := NewStack()

	first := stack.Push(Layer{Kind: "toast"})
	second := stack.Push(Layer{Kind: "dialog"})
	if first != 0 || second != 1 {
		t.Fatalf("expected sequential indexes, got %d %d", first, second)
	}

	layers := stack.Layers()
	if len(layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(layers))
	}
	if layers[0].ID == "" || layers[1].ID == "" {
		t.Fatalf("expected assigned ids: %+v", layers)
	}
	if layers[0].ID == layers[1].ID {
		t.Fatalf("expected distinct ids")
	}
}

func TestStackOnlyTopIsVisible(t *testing.T) {
	stack := NewStack()
	bottom := stack.Push(Layer{Kind: "dialog"})
	top := stack.Push(Layer{Kind: "dialog"})

	if stack.Visible(bottom) {
		t.Fatalf("expected covered layer hidden")
	}
	if !stack.Visible(top) {
		t.Fatalf("expected topmost layer visible")
	}

	if err := stack.RemoveAt(top); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !stack.Visible(bottom) {
		t.Fatalf("expected uncovered layer visible again")
	}
}

func TestStackRemoveAtBounds(t *testing.T) {
	stack := NewStack()
	stack.Push(Layer{Kind: "dialog"})

	if err := stack.RemoveAt(5); !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex, got %v", err)
	}
	if err := stack.RemoveAt(-1); !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex, got %v", err)
	}
	if err := stack.RemoveAt(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if stack.Len() != 0 {
		t.Fatalf("expected empty stack, got %d", stack.Len())
	}
}

func TestStackRemoveByID(t *testing.T) {
	stack := NewStack()
	stack.Push(Layer{ID: "bottom"})
	stack.Push(Layer{ID: "middle"})
	stack.Push(Layer{ID: "top"})

	if err := stack.Remove("middle"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	layers := stack.Layers()
	if len(layers) != 2 || layers[0].ID != "bottom" || layers[1].ID != "top" {
		t.Fatalf("unexpected layers after removal: %+v", layers)
	}
	if err := stack.Remove("middle"); !errors.Is(err, ErrLayerID) {
		t.Fatalf("expected ErrLayerID, got %v", err)
	}
}

func TestStackTop(t *testing.T) {
	stack := NewStack()
	if _, ok := stack.Top(); ok {
		t.Fatalf("expected no top on empty stack")
	}
	stack.Push(Layer{ID: "a"})
	stack.Push(Layer{ID: "b"})
	top, ok := stack.Top()
	if !ok || top.ID != "b" {
		t.Fatalf("expected b on top, got %+v ok=%v", top, ok)
	}
}

func TestStackLayersIsDefensiveCopy(t *testing.T) {
	stack := NewStack()
	stack.Push(Layer{ID: "a", Kind: "dialog"})

	layers := stack.Layers()
	layers[0].Kind = "tampered"
	fresh := stack.Layers()
	if fresh[0].Kind != "dialog" {
		t.Fatalf("expected internal state untouched, got %+v", fresh[0])
	}
}
