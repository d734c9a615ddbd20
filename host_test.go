package buttonstate

import (
	"sort"
	"strings"
)

// fakeElement records every write so tests can assert on render passes.
type fakeElement struct {
	id       string
	text     string
	html     string
	display  string
	style    string
	disabled bool
	classes  map[string]bool
	writes   int
}

func newFakeElement(id, html string) *fakeElement {
	return &fakeElement{id: id, text: html, html: html, display: "inline-block", classes: map[string]bool{}}
}

func (e *fakeElement) TextContent() string { return e.text }
func (e *fakeElement) InnerHTML() string   { return e.html }

func (e *fakeElement) SetInnerHTML(markup string) {
	e.writes++
	e.html = markup
}

func (e *fakeElement) SetDisabled(disabled bool) {
	e.writes++
	e.disabled = disabled
}

func (e *fakeElement) SetStyleDisplay(value string) {
	e.writes++
	e.style = value
}

func (e *fakeElement) ToggleClass(name string, on bool) {
	e.writes++
	if on {
		e.classes[name] = true
		return
	}
	delete(e.classes, name)
}

func (e *fakeElement) ComputedDisplay() string {
	if e.style != "" {
		return e.style
	}
	return e.display
}

func (e *fakeElement) classList() string {
	names := make([]string, 0, len(e.classes))
	for name := range e.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// fakeDocument matches "#id" and "*" selectors over its elements.
type fakeDocument struct {
	elements []*fakeElement
	detached map[*fakeElement]bool
}

func newFakeDocument(elements ...*fakeElement) *fakeDocument {
	return &fakeDocument{elements: elements, detached: map[*fakeElement]bool{}}
}

func (d *fakeDocument) QuerySelectorAll(selector string) []Element {
	var out []Element
	for _, el := range d.elements {
		if selector == "*" || selector == "#"+el.id {
			out = append(out, el)
		}
	}
	return out
}

func (d *fakeDocument) Contains(el Element) bool {
	fe, ok := el.(*fakeElement)
	if !ok {
		return false
	}
	for _, candidate := range d.elements {
		if candidate == fe {
			return !d.detached[fe]
		}
	}
	return false
}
