package bind

import (
	"errors"
	"fmt"
	"testing"
)

func TestAssignResolveRoundTrip(t *testing.T) {
	cases := []struct {
		path  string
		value any
	}{
		{"name", "ada"},
		{"profile.email", "ada@example.com"},
		{"profile.prefs.theme", "dark"},
		{"a.b.c.d.e", 5},
	}

	for _, tc := range cases {
		root := map[string]any{}
		if err := Assign(root, tc.path, tc.value); err != nil {
			t.Fatalf("assign %q: %v", tc.path, err)
		}
		got, ok, err := Resolve(root, tc.path)
		if err != nil {
			t.Fatalf("resolve %q: %v", tc.path, err)
		}
		if !ok {
			t.Fatalf("expected %q to resolve", tc.path)
		}
		if got != tc.value {
			t.Fatalf("expected %v at %q, got %v", tc.value, tc.path, got)
		}
	}
}

func TestAssignCreatesMissingIntermediates(t *testing.T) {
	root := map[string]any{}
	if err := Assign(root, "a.b.c", 5); err != nil {
		t.Fatalf("assign: %v", err)
	}

	a, ok := root["a"].(map[string]any)
	if !ok {
		t.Fatalf("expected intermediate map at a, got %T", root["a"])
	}
	b, ok := a["b"].(map[string]any)
	if !ok {
		t.Fatalf("expected intermediate map at a.b, got %T", a["b"])
	}
	if b["c"] != 5 {
		t.Fatalf("expected 5 at a.b.c, got %v", b["c"])
	}
}

func TestAssignKeepsSiblings(t *testing.T) {
	root := map[string]any{
		"profile": map[string]any{
			"email": "ada@example.com",
			"name":  "ada",
		},
	}
	if err := Assign(root, "profile.email", "ada@new.example.com"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	profile := root["profile"].(map[string]any)
	if profile["name"] != "ada" {
		t.Fatalf("expected sibling preserved, got %v", profile["name"])
	}
	if profile["email"] != "ada@new.example.com" {
		t.Fatalf("expected new value, got %v", profile["email"])
	}
}

func TestAssignReplacesScalarIntermediate(t *testing.T) {
	root := map[string]any{"a": 1}
	if err := Assign(root, "a.b", 2); err != nil {
		t.Fatalf("assign: %v", err)
	}
	got, ok, err := Resolve(root, "a.b")
	if err != nil || !ok || got != 2 {
		t.Fatalf("expected 2 at a.b, got %v ok=%v err=%v", got, ok, err)
	}
}

func TestResolveMissIsNotAnError(t *testing.T) {
	root := map[string]any{"a": 1}
	got, ok, err := Resolve(root, "a.b.c")
	if err != nil {
		t.Fatalf("expected lookup miss, got error %v", err)
	}
	if ok || got != nil {
		t.Fatalf("expected miss, got %v ok=%v", got, ok)
	}
}

func TestResolveEmptyRoot(t *testing.T) {
	_, ok, err := Resolve(map[string]any{}, "a")
	if err != nil || ok {
		t.Fatalf("expected clean miss on empty root, got ok=%v err=%v", ok, err)
	}
}

func TestEmptyPathIsInvalid(t *testing.T) {
	root := map[string]any{}

	if err := Assign(root, "", 1); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath from assign, got %v", err)
	}
	if _, _, err := Resolve(root, ""); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath from resolve, got %v", err)
	}

	var pathErr *PathError
	err := Assign(root, "", 1)
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected PathError, got %T", err)
	}
}

func TestEmptySegmentIsInvalid(t *testing.T) {
	if _, err := SplitPath("a..b"); !errors.Is(err, ErrEmptySegment) {
		t.Fatalf("expected ErrEmptySegment, got %v", err)
	}
	if _, err := SplitPath(".a"); !errors.Is(err, ErrEmptySegment) {
		t.Fatalf("expected ErrEmptySegment for leading dot, got %v", err)
	}
}

func TestAssignNilRoot(t *testing.T) {
	if err := Assign(nil, "a", 1); !errors.Is(err, ErrNilRoot) {
		t.Fatalf("expected ErrNilRoot, got %v", err)
	}
}

func TestShallowCopySharesNestedValues(t *testing.T) {
	nested := map[string]any{"email": "ada@example.com"}
	root := map[string]any{"profile": nested, "count": 1}

	snapshot := ShallowCopy(root)
	if fmt.Sprintf("%p", snapshot) == fmt.Sprintf("%p", root) {
		t.Fatalf("expected a new top-level map")
	}
	if snapshot["count"] != 1 {
		t.Fatalf("expected top-level values copied, got %v", snapshot["count"])
	}

	nested["email"] = "ada@new.example.com"
	got := snapshot["profile"].(map[string]any)["email"]
	if got != "ada@new.example.com" {
		t.Fatalf("expected nested values shared, got %v", got)
	}
}

func BenchmarkAssignDeepPath(b *testing.B) {
	root := map[string]any{}
	for i := 0; i < b.N; i++ {
		if err := Assign(root, "profile.prefs.notifications.email", i); err != nil {
			b.Fatalf("assign: %v", err)
		}
	}
}
