package buttonstate

import (
	"fmt"
	"sort"
	"strings"
)

// OptionField describes a leaf of an options tree and its inferred type.
type OptionField struct {
	Path string
	Type string
}

var knownOptionPaths = []string{
	"state.loading",
	"state.disabled",
	"state.display",
	"loading.class",
	"loading.html",
	"loading.expr",
	"loading.engine",
	"loading.icon",
	"disabled.class",
	"display.show.class",
	"display.hide.class",
	"onChange",
}

// KnownOptionPaths lists the dotted paths ResolveConfig reads.
func KnownOptionPaths() []string {
	return append([]string(nil), knownOptionPaths...)
}

// DescribeOptions flattens options into leaf paths sorted by path. Empty
// maps are reported as leaves.
func DescribeOptions(options map[string]any) []OptionField {
	return describe(options, "")
}

// UnknownOptionPaths returns the leaf paths of options that ResolveConfig
// ignores. Keys under state are never reported; they become state extras.
func UnknownOptionPaths(options map[string]any) []string {
	known := make(map[string]bool, len(knownOptionPaths))
	for _, path := range knownOptionPaths {
		known[path] = true
	}
	var unknown []string
	for _, field := range DescribeOptions(options) {
		if known[field.Path] || strings.HasPrefix(field.Path, "state.") {
			continue
		}
		unknown = append(unknown, field.Path)
	}
	return unknown
}

func describe(value any, prefix string) []OptionField {
	if value == nil {
		return nil
	}
	if node, ok := asMap(value); ok {
		if len(node) == 0 {
			if prefix == "" {
				return nil
			}
			return []OptionField{{Path: prefix, Type: "map[string]any"}}
		}
		keys := make([]string, 0, len(node))
		for key := range node {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var fields []OptionField
		for _, key := range keys {
			fields = append(fields, describe(node[key], joinPath(prefix, key))...)
		}
		return fields
	}
	if prefix == "" {
		return nil
	}
	return []OptionField{{Path: prefix, Type: fmt.Sprintf("%T", value)}}
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
