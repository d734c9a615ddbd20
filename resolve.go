package buttonstate

import "strings"

// Resolve walks options along the dotted path and returns the value found
// there. It returns def as soon as a segment is missing, the value being
// traversed is not a map, or the value at the end of the path is nil.
func Resolve(options map[string]any, path string, def any) any {
	if options == nil || path == "" {
		return def
	}
	var current any = options
	for _, segment := range strings.Split(path, ".") {
		node, ok := asMap(current)
		if !ok {
			return def
		}
		next, ok := node[segment]
		if !ok {
			return def
		}
		current = next
	}
	if current == nil {
		return def
	}
	return current
}

// ResolveString resolves path as a string, returning def for any other type.
func ResolveString(options map[string]any, path, def string) string {
	if value, ok := Resolve(options, path, nil).(string); ok {
		return value
	}
	return def
}

// ResolveBool resolves path as a bool, returning def for any other type.
func ResolveBool(options map[string]any, path string, def bool) bool {
	if value, ok := Resolve(options, path, nil).(bool); ok {
		return value
	}
	return def
}

// ResolveMap resolves path as a nested options map.
func ResolveMap(options map[string]any, path string) map[string]any {
	node, _ := asMap(Resolve(options, path, nil))
	return node
}

// ResolveConfig builds a fully defaulted Config from a sparse options tree.
func ResolveConfig(options map[string]any) Config {
	cfg := Config{
		State: patchFromMap(ResolveMap(options, "state")),
		Loading: LoadingConfig{
			Class: ResolveString(options, "loading.class", DefaultLoadingClass),
			HTML:  resolveContent(options),
			Icon:  ResolveString(options, "loading.icon", ""),
		},
		Disabled: ClassConfig{
			Class: ResolveString(options, "disabled.class", DefaultDisabledClass),
		},
		Display: DisplayConfig{
			Show: ClassConfig{Class: ResolveString(options, "display.show.class", DefaultShowClass)},
			Hide: ClassConfig{Class: ResolveString(options, "display.hide.class", DefaultHideClass)},
		},
	}
	switch fn := Resolve(options, "onChange", nil).(type) {
	case ChangeFunc:
		cfg.OnChange = fn
	case func(State, []Element):
		cfg.OnChange = fn
	}
	return cfg
}

func resolveContent(options map[string]any) Content {
	switch value := Resolve(options, "loading.html", nil).(type) {
	case string:
		return Literal(value)
	case Content:
		return value
	case func(string) string:
		return Generator(value)
	}
	if expr := ResolveString(options, "loading.expr", ""); expr != "" {
		return Expression(ResolveString(options, "loading.engine", EngineExpr), expr)
	}
	return Content{}
}

// asMap reports whether value is a traversable options node. Decoders emit
// map[string]any; yaml.v3 may also emit map[any]any for non-string keys.
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
