package bind

import "strings"

// SplitPath validates a dotted path expression and returns its segments. An
// empty expression or an empty segment is invalid.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, &PathError{Op: "split", Path: path, Err: ErrEmptyPath}
	}
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, &PathError{Op: "split", Path: path, Err: ErrEmptySegment}
		}
	}
	return segments, nil
}

// Resolve walks root one segment at a time and returns the value stored at
// path. A missing or non-map intermediate is a lookup miss reported through
// the boolean, not a fault; only an invalid path expression is an error.
func Resolve(root map[string]any, path string) (any, bool, error) {
	segments, err := SplitPath(path)
	if err != nil {
		return nil, false, err
	}
	if root == nil {
		return nil, false, nil
	}

	var current any = root
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false, nil
		}
		current, ok = node[segment]
		if !ok {
			return nil, false, nil
		}
	}
	return current, true, nil
}

// Assign stores value at path, mutating root in place. Missing intermediates
// are created as empty maps and non-map intermediates are replaced, so a
// write never fails once the path expression itself is valid. Reads and
// writes deliberately disagree on failure policy: probing a speculative path
// must be safe, while reset/set-value must always land.
func Assign(root map[string]any, path string, value any) error {
	if root == nil {
		return &PathError{Op: "assign", Path: path, Err: ErrNilRoot}
	}
	segments, err := SplitPath(path)
	if err != nil {
		return err
	}

	current := root
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
	return nil
}

// ShallowCopy returns a new top-level map whose entries reference the same
// nested values as root. Identity-based change detection in hosts observes
// the copy as a change while every live reference to root still agrees on
// field values.
func ShallowCopy(root map[string]any) map[string]any {
	if root == nil {
		return nil
	}
	out := make(map[string]any, len(root))
	for key, value := range root {
		out[key] = value
	}
	return out
}
