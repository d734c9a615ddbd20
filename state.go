package buttonstate

import "math"

// State keys recognised when merging map patches.
const (
	KeyLoading  = "loading"
	KeyDisabled = "disabled"
	KeyDisplay  = "display"
)

// State is the logical state reconciled into bound elements. The three flags
// are independent; every combination is valid.
type State struct {
	Loading  bool
	Disabled bool
	Display  bool
	// Extra holds additional keys merged through SetState maps. They take part
	// in change detection and are passed to the change callback.
	Extra map[string]any
}

// DefaultState is the state used when no overrides are configured.
func DefaultState() State {
	return State{Display: true}
}

// Map returns the state as a key/value tree.
func (s State) Map() map[string]any {
	out := make(map[string]any, len(s.Extra)+3)
	for key, value := range s.Extra {
		out[key] = value
	}
	out[KeyLoading] = s.Loading
	out[KeyDisabled] = s.Disabled
	out[KeyDisplay] = s.Display
	return out
}

// Clone returns a copy of s with a detached Extra map.
func (s State) Clone() State {
	s.Extra = cloneMap(s.Extra)
	return s
}

// Patch is a partial state update. Nil fields are left untouched.
type Patch struct {
	Loading  *bool
	Disabled *bool
	Display  *bool
	Extra    map[string]any
}

// Bool returns a pointer to v for use in Patch literals.
func Bool(v bool) *bool {
	return &v
}

func (p Patch) apply(s State) State {
	if p.Loading != nil {
		s.Loading = *p.Loading
	}
	if p.Disabled != nil {
		s.Disabled = *p.Disabled
	}
	if p.Display != nil {
		s.Display = *p.Display
	}
	if len(p.Extra) > 0 {
		extra := cloneMap(s.Extra)
		if extra == nil {
			extra = make(map[string]any, len(p.Extra))
		}
		for key, value := range p.Extra {
			extra[key] = value
		}
		s.Extra = extra
	}
	return s
}

// merge layers stronger on top of p.
func (p Patch) merge(stronger Patch) Patch {
	if stronger.Loading != nil {
		p.Loading = stronger.Loading
	}
	if stronger.Disabled != nil {
		p.Disabled = stronger.Disabled
	}
	if stronger.Display != nil {
		p.Display = stronger.Display
	}
	if len(stronger.Extra) > 0 {
		extra := cloneMap(p.Extra)
		if extra == nil {
			extra = make(map[string]any, len(stronger.Extra))
		}
		for key, value := range stronger.Extra {
			extra[key] = value
		}
		p.Extra = extra
	}
	return p
}

func patchFromState(s State) Patch {
	return Patch{
		Loading:  Bool(s.Loading),
		Disabled: Bool(s.Disabled),
		Display:  Bool(s.Display),
		Extra:    cloneMap(s.Extra),
	}
}

func patchFromMap(values map[string]any) Patch {
	var p Patch
	for key, value := range values {
		switch key {
		case KeyLoading:
			p.Loading = Bool(Truthy(value))
		case KeyDisabled:
			p.Disabled = Bool(Truthy(value))
		case KeyDisplay:
			p.Display = Bool(Truthy(value))
		default:
			if p.Extra == nil {
				p.Extra = map[string]any{}
			}
			p.Extra[key] = value
		}
	}
	return p
}

// toPatch converts a SetState argument. Anything that is not a key/value
// shape reports false and is ignored by the caller.
func toPatch(partial any) (Patch, bool) {
	switch value := partial.(type) {
	case Patch:
		return value, true
	case *Patch:
		if value == nil {
			return Patch{}, false
		}
		return *value, true
	case State:
		return patchFromState(value), true
	case *State:
		if value == nil {
			return Patch{}, false
		}
		return patchFromState(*value), true
	case map[string]any:
		if value == nil {
			return Patch{}, false
		}
		return patchFromMap(value), true
	case map[string]bool:
		if value == nil {
			return Patch{}, false
		}
		converted := make(map[string]any, len(value))
		for key, flag := range value {
			converted[key] = flag
		}
		return patchFromMap(converted), true
	default:
		return Patch{}, false
	}
}

// Truthy coerces loosely typed option values to a boolean. nil, false, zero
// and NaN numbers and the empty string are false; everything else is true.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case float64:
		return v != 0 && !math.IsNaN(v)
	default:
		return true
	}
}

func cloneMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
