package bind

import (
	"fmt"

	"github.com/goliatone/go-binding/pkg/notify"
)

// MultiGroup is a checkbox-style option group: an ordered set of distinct
// selected values, with every option's Selected flag re-derived from the set
// on each transition.
type MultiGroup struct {
	groupEmitter
	selected []string
	options  []Option
}

// NewMultiGroup builds the option list once from defs. Initial entries that
// match no option are dropped; the resulting set holds distinct values in
// option order.
func NewMultiGroup(defs []OptionDef, initial []string, opts ...GroupOption) (*MultiGroup, error) {
	g := &MultiGroup{
		groupEmitter: groupEmitter{cfg: applyGroupOptions(opts)},
	}
	options, err := buildOptions(defs, func(value string) error {
		return g.Toggle(value)
	})
	if err != nil {
		return nil, err
	}
	g.options = options

	checked := make(map[string]struct{}, len(initial))
	for _, value := range initial {
		checked[value] = struct{}{}
	}
	for _, option := range g.options {
		if _, ok := checked[option.Value]; ok {
			g.selected = append(g.selected, option.Value)
		}
	}
	g.derive()
	return g, nil
}

// Toggle flips membership of value in the selected set and re-derives every
// option's flag. Toggling twice in succession restores the original set; the
// set never holds duplicates.
func (g *MultiGroup) Toggle(value string) error {
	if !g.declares(value) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, value)
	}
	previous := g.Selected()
	if g.member(value) {
		g.remove(value)
	} else {
		g.selected = append(g.selected, value)
	}
	g.derive()
	g.emit(notify.Event{
		Kind:     notify.KindToggle,
		Previous: previous,
		Value:    g.Selected(),
	})
	return nil
}

// SelectAll sets every option's flag to checked in one atomic transition.
// When checked, the selected set becomes exactly the full option list in
// option order; otherwise it becomes empty. This is a single bulk state
// change, never expressed as per-option toggles.
func (g *MultiGroup) SelectAll(checked bool) {
	previous := g.Selected()
	if checked {
		g.selected = make([]string, 0, len(g.options))
		for _, option := range g.options {
			g.selected = append(g.selected, option.Value)
		}
	} else {
		g.selected = nil
	}
	g.derive()
	g.emit(notify.Event{
		Kind:     notify.KindSelectAll,
		Previous: previous,
		Value:    g.Selected(),
	})
}

// Selected returns a copy of the ordered selected set.
func (g *MultiGroup) Selected() []string {
	if len(g.selected) == 0 {
		return nil
	}
	out := make([]string, len(g.selected))
	copy(out, g.selected)
	return out
}

// Options returns a copy of the ordered option list. Length and order never
// change after construction.
func (g *MultiGroup) Options() []Option {
	return copyOptions(g.options)
}

// Mount wires the hooks supplied at construction. Mounting again is a no-op;
// the option list is never rebuilt.
func (g *MultiGroup) Mount() {
	g.mount()
}

// Unmount severs the subscription wiring. The group stops emitting but keeps
// its state, so a remount resumes where it left off.
func (g *MultiGroup) Unmount() {
	g.unmount()
}

func (g *MultiGroup) declares(value string) bool {
	for _, option := range g.options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func (g *MultiGroup) member(value string) bool {
	for _, selected := range g.selected {
		if selected == value {
			return true
		}
	}
	return false
}

func (g *MultiGroup) remove(value string) {
	out := g.selected[:0]
	for _, selected := range g.selected {
		if selected != value {
			out = append(out, selected)
		}
	}
	g.selected = out
}

func (g *MultiGroup) derive() {
	for i := range g.options {
		g.options[i].Selected = g.member(g.options[i].Value)
	}
}
