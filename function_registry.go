package buttonstate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Function is a helper callable from loading content expressions.
type Function func(args ...any) (any, error)

var (
	// ErrInvalidFunction reports a registration without a name or a function.
	ErrInvalidFunction = errors.New("buttonstate: invalid content function")
	// ErrFunctionExists reports a second registration under the same name.
	ErrFunctionExists = errors.New("buttonstate: content function already registered")
	// ErrFunctionNotFound reports a call to a name that was never registered.
	ErrFunctionNotFound = errors.New("buttonstate: content function not registered")
)

// FunctionRegistry holds the helpers exposed to loading content expressions.
// Names are matched case-insensitively. Every registration stamps a new
// revision; compiled programs that captured the helpers are cached per
// revision.
type FunctionRegistry struct {
	mu       sync.RWMutex
	entries  map[string]Function
	revision string
}

// NewFunctionRegistry constructs an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{entries: map[string]Function{}}
}

// Register adds fn under name. Names are unique within a registry.
func (r *FunctionRegistry) Register(name string, fn Function) error {
	key := functionKey(name)
	if key == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidFunction)
	}
	if fn == nil {
		return fmt.Errorf("%w: %q is nil", ErrInvalidFunction, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = map[string]Function{}
	}
	if _, taken := r.entries[key]; taken {
		return fmt.Errorf("%w: %q", ErrFunctionExists, name)
	}
	r.entries[key] = fn
	r.revision = uuid.NewString()
	return nil
}

// Has reports whether name is registered.
func (r *FunctionRegistry) Has(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[functionKey(name)]
	return ok
}

// Len returns the number of registered helpers.
func (r *FunctionRegistry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clone returns an independent registry holding the same helpers. The clone
// keeps the revision until it is changed.
func (r *FunctionRegistry) Clone() *FunctionRegistry {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := &FunctionRegistry{
		entries:  make(map[string]Function, len(r.entries)),
		revision: r.revision,
	}
	for key, fn := range r.entries {
		clone.entries[key] = fn
	}
	return clone
}

// Call runs the helper registered under name.
func (r *FunctionRegistry) Call(name string, args ...any) (any, error) {
	var fn Function
	if r != nil {
		r.mu.RLock()
		fn = r.entries[functionKey(name)]
		r.mu.RUnlock()
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
	}
	return fn(args...)
}

// Names returns the registered names, lower-cased and sorted.
func (r *FunctionRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for key := range r.entries {
		names = append(names, key)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *FunctionRegistry) currentRevision() string {
	if r == nil {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *FunctionRegistry) bind(name string) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		return r.Call(name, args...)
	}
}

func functionKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// WithFunctionRegistry exposes a copy of registry's helpers to loading
// content expressions.
func WithFunctionRegistry(registry *FunctionRegistry) Option {
	return func(cfg *buttonConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// WithContentFunction registers fn under name for loading content
// expressions. Registration failures are reported to the render logger when
// the button is constructed.
func WithContentFunction(name string, fn Function) Option {
	return func(cfg *buttonConfig) {
		if cfg.functions == nil {
			cfg.functions = NewFunctionRegistry()
		}
		if err := cfg.functions.Register(name, fn); err != nil {
			cfg.errs = append(cfg.errs, err)
		}
	}
}
