package bind

import (
	"fmt"
	"sort"
	"strings"
)

// ControlDescriptor describes one bindable path in a tree and the inferred
// value type. Hosts use descriptors to lay out controls for initial-data
// blobs they have not seen before.
type ControlDescriptor struct {
	Path string
	Type string
}

// DeriveControlDescriptors flattens root into bindable paths sorted per
// level. Leaves produce one descriptor each; empty maps and slices are
// reported as a single descriptor at their own path.
func DeriveControlDescriptors(root map[string]any) []ControlDescriptor {
	descriptors := deriveDescriptors(root, "")
	if descriptors == nil {
		descriptors = []ControlDescriptor{}
	}
	return descriptors
}

func deriveDescriptors(value any, prefix string) []ControlDescriptor {
	if value == nil {
		return nil
	}

	switch typed := value.(type) {
	case map[string]any:
		if len(typed) == 0 {
			if prefix == "" {
				return nil
			}
			return []ControlDescriptor{{
				Path: prefix,
				Type: "map[string]any",
			}}
		}
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var descriptors []ControlDescriptor
		for _, key := range keys {
			nextPrefix := joinPath(prefix, key)
			descriptors = append(descriptors, deriveDescriptors(typed[key], nextPrefix)...)
		}
		return descriptors
	case []any:
		elementType := "any"
		if len(typed) > 0 {
			elementType = typeName(typed[0])
		}
		return []ControlDescriptor{{
			Path: prefix,
			Type: "[]" + elementType,
		}}
	default:
		if prefix == "" {
			return nil
		}
		return []ControlDescriptor{{
			Path: prefix,
			Type: typeName(typed),
		}}
	}
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return strings.Join([]string{prefix, segment}, ".")
}
