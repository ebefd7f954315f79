package bind

import "github.com/goliatone/go-binding/pkg/notify"

// ExclusiveGroup is a radio-style option group: a single authoritative
// selected value, with every option's Selected flag re-derived from it on
// each transition.
type ExclusiveGroup struct {
	groupEmitter
	selected string
	options  []Option
}

// NewExclusiveGroup builds the option list once from defs. The initial
// selection may be empty, meaning no option is selected.
func NewExclusiveGroup(defs []OptionDef, initial string, opts ...GroupOption) (*ExclusiveGroup, error) {
	g := &ExclusiveGroup{
		groupEmitter: groupEmitter{cfg: applyGroupOptions(opts)},
		selected:     initial,
	}
	options, err := buildOptions(defs, func(value string) error {
		return g.Select(value)
	})
	if err != nil {
		return nil, err
	}
	g.options = options
	g.derive()
	return g, nil
}

// Select makes value the authoritative selection and re-derives every
// option's flag. Selecting the current value is a no-op transition that
// still notifies, matching the at-least-once notification policy. A value no
// option declares is allowed and leaves zero options selected.
func (g *ExclusiveGroup) Select(value string) error {
	previous := g.selected
	g.selected = value
	g.derive()
	g.emit(notify.Event{
		Kind:     notify.KindSelect,
		Previous: previous,
		Value:    value,
	})
	return nil
}

// Selected returns the authoritative selected value.
func (g *ExclusiveGroup) Selected() string {
	return g.selected
}

// Options returns a copy of the ordered option list. Length and order never
// change after construction.
func (g *ExclusiveGroup) Options() []Option {
	return copyOptions(g.options)
}

// Mount wires the hooks supplied at construction. Mounting again is a no-op;
// the option list is never rebuilt.
func (g *ExclusiveGroup) Mount() {
	g.mount()
}

// Unmount severs the subscription wiring. The group stops emitting but keeps
// its state, so a remount resumes where it left off.
func (g *ExclusiveGroup) Unmount() {
	g.unmount()
}

func (g *ExclusiveGroup) derive() {
	for i := range g.options {
		g.options[i].Selected = g.options[i].Value == g.selected
	}
}
