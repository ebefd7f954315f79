// Package bind keeps rendered form-control state synchronized with one of
// three backing representations: a locally owned value, a field inside a
// mutable tree addressed by a dotted path, or a value/setter pair owned by
// the host.
//
// Responsibilities:
//   - Resolve/Assign provide read/write access to dotted paths inside
//     map[string]any trees. Reads treat unreachable paths as a lookup miss;
//     writes create missing intermediates and only reject invalid paths.
//   - Source abstracts the three backing stores behind a uniform
//     read/write/notify contract. Every write is followed by a change
//     notification fanned out through pkg/notify hooks.
//   - Field wraps a Source into the two views a host control consumes: the
//     control-facing value/change-handler pair, and the imperative
//     setter/reset pair.
//   - ExclusiveGroup and MultiGroup own ordered option lists with derived
//     per-option selection flags, built exactly once per group lifetime.
//
// Data flow:
//
//	host event -> Field/Group -> Source write -> notify.Hooks -> host render
//
// All state transitions are synchronous reactions to discrete UI events. A
// binding instance is intended for a single goroutine; shared infrastructure
// (FunctionRegistry, overlay.Stack) keeps its own locking.
package bind
