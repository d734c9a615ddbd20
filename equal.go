package buttonstate

import "reflect"

// Equal reports whether a and b are structurally equal. Sequences compare
// element-wise in order, key/value maps compare by key count and per-key
// value regardless of key order. A nil on either side is only equal to an
// identical nil.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if sa, ok := a.(State); ok {
		a = sa.Map()
	}
	if sb, ok := b.(State); ok {
		b = sb.Map()
	}

	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return false
		}
		if len(av) != len(bv) {
			return false
		}
		for key, value := range av {
			other, ok := bv[key]
			if !ok || !Equal(value, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return false
		}
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	if ra.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
