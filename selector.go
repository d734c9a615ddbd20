package buttonstate

import "reflect"

type selectorKind uint8

const (
	selectorNone selectorKind = iota
	selectorElement
	selectorQuery
	selectorList
)

// Selector describes which elements a Button binds to. It is resolved once,
// when the Button is constructed.
type Selector struct {
	kind    selectorKind
	element Element
	query   string
	items   []any
}

// None selects nothing.
func None() Selector {
	return Selector{}
}

// ElementOf selects a single element. A nil element, including a typed nil
// handle, selects nothing.
func ElementOf(el Element) Selector {
	if isNilElement(el) {
		return Selector{}
	}
	return Selector{kind: selectorElement, element: el}
}

// Query selects every element matching a CSS selector, in document order.
func Query(selector string) Selector {
	if selector == "" {
		return Selector{}
	}
	return Selector{kind: selectorQuery, query: selector}
}

// List selects a mix of Element handles and selector strings. Entries are
// resolved in order; nil handles and entries of any other type are ignored.
func List(items ...any) Selector {
	if len(items) == 0 {
		return Selector{}
	}
	return Selector{kind: selectorList, items: append([]any(nil), items...)}
}

// Resolve returns the selected elements.
func (s Selector) Resolve(doc Document) []Element {
	switch s.kind {
	case selectorElement:
		return []Element{s.element}
	case selectorQuery:
		return queryAll(doc, s.query)
	case selectorList:
		var out []Element
		for _, item := range s.items {
			switch entry := item.(type) {
			case Element:
				if !isNilElement(entry) {
					out = append(out, entry)
				}
			case string:
				out = append(out, queryAll(doc, entry)...)
			}
		}
		return out
	default:
		return nil
	}
}

func queryAll(doc Document, selector string) []Element {
	if doc == nil || selector == "" {
		return nil
	}
	matches := doc.QuerySelectorAll(selector)
	out := matches[:0]
	for _, el := range matches {
		if !isNilElement(el) {
			out = append(out, el)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SelectorFrom classifies a loosely typed selector input. Unsupported inputs
// select nothing.
func SelectorFrom(input any) Selector {
	switch value := input.(type) {
	case Selector:
		return value
	case Element:
		return ElementOf(value)
	case string:
		return Query(value)
	case []any:
		return List(value...)
	case []string:
		items := make([]any, len(value))
		for i, item := range value {
			items[i] = item
		}
		return List(items...)
	case []Element:
		items := make([]any, len(value))
		for i, item := range value {
			items[i] = item
		}
		return List(items...)
	default:
		return None()
	}
}

// isNilElement reports whether el is nil or a typed nil handle, such as a
// host lookup that found nothing.
func isNilElement(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
