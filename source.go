package bind

import (
	"context"

	"github.com/google/uuid"

	"github.com/goliatone/go-binding/pkg/notify"
)

// Source is the uniform read/write/notify contract shared by the three
// backing stores. Every Write must be immediately followed by NotifyChanged:
// no buffering, no batching, no async deferral.
type Source interface {
	Read() any
	Write(value any) error
	NotifyChanged()
}

// SourceOption configures a binding source instance.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	id      string
	emitter *notify.Emitter
}

// WithSourceID overrides the generated binding identifier.
func WithSourceID(id string) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.id = id
	}
}

// WithEmitter wires a preconfigured emitter into the source.
func WithEmitter(emitter *notify.Emitter) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.emitter = emitter
	}
}

// WithHooks builds an enabled emitter from hooks. Nil entries are dropped.
func WithHooks(hooks ...notify.Hook) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.emitter = notify.NewEmitter(notify.Hooks(hooks), notify.Config{Enabled: true})
	}
}

func applySourceOptions(opts []SourceOption) sourceConfig {
	cfg := sourceConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	return cfg
}

func (cfg sourceConfig) emit(event notify.Event) {
	if cfg.emitter == nil {
		return
	}
	event.Binding = cfg.id
	_ = cfg.emitter.Emit(context.Background(), event)
}

// LocalValue owns a single scalar for the lifetime of its binding.
type LocalValue struct {
	cfg      sourceConfig
	value    any
	previous any
}

// NewLocalValue constructs a source around an ephemeral local value.
func NewLocalValue(initial any, opts ...SourceOption) *LocalValue {
	return &LocalValue{
		cfg:   applySourceOptions(opts),
		value: initial,
	}
}

func (s *LocalValue) Read() any {
	return s.value
}

func (s *LocalValue) Write(value any) error {
	s.previous = s.value
	s.value = value
	return nil
}

func (s *LocalValue) NotifyChanged() {
	s.cfg.emit(notify.Event{
		Kind:     notify.KindWrite,
		Previous: s.previous,
		Value:    s.value,
	})
}

// ID returns the binding identifier assigned at construction.
func (s *LocalValue) ID() string {
	return s.cfg.id
}

// PathValue binds one field inside an externally-owned tree. It never owns
// the root: writes mutate the tree in place so every live reference observes
// the new field value, then NotifyChanged emits a shallow snapshot so
// identity-based change detection in the host observes the write too.
type PathValue struct {
	cfg      sourceConfig
	root     map[string]any
	path     string
	previous any
}

// NewPathValue constructs a source addressing root at the dotted path. The
// root reference and a valid path are required eagerly, before any UI
// interaction reaches the binding.
func NewPathValue(root map[string]any, path string, opts ...SourceOption) (*PathValue, error) {
	if root == nil {
		return nil, newMissingParameter("path value", "a backing root")
	}
	if path == "" {
		return nil, newMissingParameter("path value", "a non-empty path")
	}
	if _, err := SplitPath(path); err != nil {
		return nil, err
	}
	return &PathValue{
		cfg:  applySourceOptions(opts),
		root: root,
		path: path,
	}, nil
}

func (s *PathValue) Read() any {
	value, _, _ := Resolve(s.root, s.path)
	return value
}

func (s *PathValue) Write(value any) error {
	s.previous = s.Read()
	return Assign(s.root, s.path, value)
}

func (s *PathValue) NotifyChanged() {
	s.cfg.emit(notify.Event{
		Path:     s.path,
		Kind:     notify.KindWrite,
		Previous: s.previous,
		Value:    s.Read(),
		Snapshot: ShallowCopy(s.root),
	})
}

// ID returns the binding identifier assigned at construction.
func (s *PathValue) ID() string {
	return s.cfg.id
}

// Snapshot returns a shallow copy of the backing tree.
func (s *PathValue) Snapshot() map[string]any {
	return ShallowCopy(s.root)
}

// SharedValue binds one field of a value/setter pair owned by the host. The
// mutation discipline matches PathValue, except the replacement snapshot is
// also pushed through the caller-supplied setter so the external owner stays
// authoritative. The binding must not outlive the owner of the pair.
type SharedValue struct {
	cfg      sourceConfig
	root     map[string]any
	set      func(map[string]any)
	path     string
	previous any
}

// NewSharedValue constructs a source over a caller-owned (value, setter)
// pair and a field path inside the value.
func NewSharedValue(value map[string]any, set func(map[string]any), path string, opts ...SourceOption) (*SharedValue, error) {
	if value == nil || set == nil {
		return nil, newMissingParameter("shared value", "a value/setter pair")
	}
	if path == "" {
		return nil, newMissingParameter("shared value", "a non-empty path")
	}
	if _, err := SplitPath(path); err != nil {
		return nil, err
	}
	return &SharedValue{
		cfg:  applySourceOptions(opts),
		root: value,
		set:  set,
		path: path,
	}, nil
}

func (s *SharedValue) Read() any {
	value, _, _ := Resolve(s.root, s.path)
	return value
}

func (s *SharedValue) Write(value any) error {
	s.previous = s.Read()
	return Assign(s.root, s.path, value)
}

func (s *SharedValue) NotifyChanged() {
	snapshot := ShallowCopy(s.root)
	s.set(snapshot)
	s.cfg.emit(notify.Event{
		Path:     s.path,
		Kind:     notify.KindWrite,
		Previous: s.previous,
		Value:    s.Read(),
		Snapshot: snapshot,
	})
}

// ID returns the binding identifier assigned at construction.
func (s *SharedValue) ID() string {
	return s.cfg.id
}

// Snapshot returns a shallow copy of the backing tree.
func (s *SharedValue) Snapshot() map[string]any {
	return ShallowCopy(s.root)
}

// snapshotter is implemented by sources backed by a tree.
type snapshotter interface {
	Snapshot() map[string]any
}

func snapshotOf(source Source) map[string]any {
	if s, ok := source.(snapshotter); ok {
		return s.Snapshot()
	}
	return nil
}
