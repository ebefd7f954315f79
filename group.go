package bind

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-binding/internal/hydrate"
	"github.com/goliatone/go-binding/pkg/notify"
)

// OptionDef declares one selectable option supplied at group construction.
// Label falls back to Value when left empty.
type OptionDef struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// Option is one rendered entry of a group, bindable directly to a checkbox
// or radio element. Selected is derived from the group's authoritative
// selection state on every transition and must never be patched directly.
type Option struct {
	Value    string
	Label    string
	Selected bool
	Toggle   func() error
}

// GroupOption configures an option group.
type GroupOption func(*groupConfig)

type groupConfig struct {
	id    string
	hooks notify.Hooks
}

// WithGroupID overrides the generated group identifier.
func WithGroupID(id string) GroupOption {
	return func(cfg *groupConfig) {
		cfg.id = id
	}
}

// WithGroupHooks registers change hooks attached when the group mounts.
func WithGroupHooks(hooks ...notify.Hook) GroupOption {
	return func(cfg *groupConfig) {
		cfg.hooks = append(cfg.hooks, hooks...)
	}
}

func applyGroupOptions(opts []GroupOption) groupConfig {
	cfg := groupConfig{}
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

// buildOptions materializes the option list exactly once, at group
// construction. Toggle handlers capture only the option value; selection
// state is always read back from the group when they fire.
func buildOptions(defs []OptionDef, toggle func(value string) error) ([]Option, error) {
	if len(defs) == 0 {
		return nil, newMissingParameter("option group", "option definitions")
	}
	seen := make(map[string]struct{}, len(defs))
	options := make([]Option, 0, len(defs))
	for _, def := range defs {
		if def.Value == "" {
			return nil, newMissingParameter("option group", "option values")
		}
		if _, dup := seen[def.Value]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOption, def.Value)
		}
		seen[def.Value] = struct{}{}
		label := def.Label
		if label == "" {
			label = def.Value
		}
		value := def.Value
		options = append(options, Option{
			Value: value,
			Label: label,
			Toggle: func() error {
				return toggle(value)
			},
		})
	}
	return options, nil
}

func copyOptions(options []Option) []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// OptionDefsFromPayload decodes duck-typed option definitions supplied by a
// host into typed records. Payload entries may carry the label under either
// "label" or the legacy "text" key.
func OptionDefsFromPayload(control string, payload []map[string]any) ([]OptionDef, error) {
	if len(payload) == 0 {
		return nil, newMissingParameter("option group", "option definitions")
	}
	decoder := hydrate.NewDecoder(
		hydrate.WithPreHook[OptionDef](func(_ hydrate.Context, raw map[string]any) (map[string]any, error) {
			if _, ok := raw["label"]; ok {
				return raw, nil
			}
			if text, ok := raw["text"]; ok {
				raw["label"] = text
				delete(raw, "text")
			}
			return raw, nil
		}),
		hydrate.WithPostHook[OptionDef](func(ctx hydrate.Context, def *OptionDef) error {
			if def.Value == "" {
				return fmt.Errorf("option %d of %q has no value", ctx.Index, ctx.Control)
			}
			return nil
		}),
	)

	defs := make([]OptionDef, 0, len(payload))
	for i, raw := range payload {
		def, err := decoder.Decode(hydrate.Context{Control: control, Index: i}, raw)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// groupEmitter is the subscription half of a group's two-phase lifecycle:
// construction builds the option list, Mount/Unmount only wire hooks.
type groupEmitter struct {
	cfg     groupConfig
	emitter *notify.Emitter
}

func (g *groupEmitter) mount() {
	if g.emitter != nil {
		return
	}
	g.emitter = notify.NewEmitter(g.cfg.hooks, notify.Config{Enabled: true})
}

func (g *groupEmitter) unmount() {
	g.emitter = nil
}

func (g *groupEmitter) emit(event notify.Event) {
	if g.emitter == nil {
		return
	}
	event.Binding = g.cfg.id
	_ = g.emitter.Emit(context.Background(), event)
}
