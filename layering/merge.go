// Package layering deep-merges sparse option trees.
package layering

// Merge composes option layers ordered from strongest to weakest. Nested maps
// are merged key by key; any other value from a stronger layer replaces the
// weaker one outright, including slices. A nil value in a stronger layer
// does not mask the weaker value. Inputs are never modified.
func Merge(layers ...map[string]any) map[string]any {
	merged := map[string]any{}
	for i := len(layers) - 1; i >= 0; i-- {
		merged = mergeInto(merged, layers[i])
	}
	return merged
}

func mergeInto(weak, strong map[string]any) map[string]any {
	for key, value := range strong {
		if value == nil {
			continue
		}
		strongNode, strongIsMap := asMap(value)
		weakNode, weakIsMap := asMap(weak[key])
		switch {
		case strongIsMap && weakIsMap:
			weak[key] = mergeInto(Clone(weakNode), strongNode)
		case strongIsMap:
			weak[key] = Clone(strongNode)
		default:
			weak[key] = cloneValue(value)
		}
	}
	return weak
}

// Clone deep-copies nested maps and slices of an option tree. Leaf values,
// including functions, are shared.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	if node, ok := asMap(value); ok {
		return Clone(node)
	}
	if items, ok := value.([]any); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = cloneValue(item)
		}
		return out
	}
	return value
}

func asMap(value any) (map[string]any, bool) {
	switch node := value.(type) {
	case map[string]any:
		return node, node != nil
	case map[any]any:
		if node == nil {
			return nil, false
		}
		out := make(map[string]any, len(node))
		for key, item := range node {
			if name, ok := key.(string); ok {
				out[name] = item
			}
		}
		return out, true
	default:
		return nil, false
	}
}
