// Package optionsfile loads sparse button option trees from JSON or YAML
// files.
package optionsfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies an options file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// PreHook lets callers normalise or validate the decoded tree before it is
// returned.
type PreHook func(path string, options map[string]any) (map[string]any, error)

// Option configures Load and Decode.
type Option func(*loader)

type loader struct {
	preHooks []PreHook
}

// WithPreHook applies hook to the decoded tree.
func WithPreHook(hook PreHook) Option {
	return func(l *loader) {
		if hook != nil {
			l.preHooks = append(l.preHooks, hook)
		}
	}
}

// FormatOf infers the encoding from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("optionsfile: unsupported extension for %q", path)
	}
}

// Load reads and decodes the options file at path.
func Load(path string, opts ...Option) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("optionsfile: read %q: %w", path, err)
	}
	return decode(path, format, data, opts)
}

// Decode decodes data in the given format. An empty document yields an
// empty tree.
func Decode(format Format, data []byte, opts ...Option) (map[string]any, error) {
	return decode("", format, data, opts)
}

func decode(path string, format Format, data []byte, opts []Option) (map[string]any, error) {
	l := &loader{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	var raw any
	if len(bytes.TrimSpace(data)) > 0 {
		switch format {
		case FormatJSON:
			if err := json.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("optionsfile: decode json %q: %w", path, err)
			}
		case FormatYAML:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("optionsfile: decode yaml %q: %w", path, err)
			}
		default:
			return nil, fmt.Errorf("optionsfile: unsupported format %q", format)
		}
	}

	var options map[string]any
	switch value := normalize(raw).(type) {
	case nil:
		options = map[string]any{}
	case map[string]any:
		options = value
	default:
		return nil, fmt.Errorf("optionsfile: %q must contain an object, got %T", path, raw)
	}

	for _, hook := range l.preHooks {
		next, err := hook(path, options)
		if err != nil {
			return nil, fmt.Errorf("optionsfile: pre-hook for %q failed: %w", path, err)
		}
		if next != nil {
			options = next
		}
	}
	return options, nil
}

// normalize rewrites map[any]any nodes, which yaml produces for non-string
// keys, into map[string]any.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalize(item)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range typed {
			typed[i] = normalize(item)
		}
		return typed
	default:
		return value
	}
}
