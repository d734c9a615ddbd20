package htmlhost

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-buttonstate"
)

// Element wraps an element node. Two wrappers of the same node are
// interchangeable.
type Element struct {
	node *html.Node
	sel  *goquery.Selection
}

var _ buttonstate.Element = (*Element)(nil)

// Wrap returns an Element for node.
func Wrap(node *html.Node) *Element {
	return &Element{node: node}
}

// Node returns the wrapped node.
func (e *Element) Node() *html.Node {
	return e.node
}

// selection is built on first use and reused; it only ever holds e.node.
func (e *Element) selection() *goquery.Selection {
	if e.sel == nil {
		e.sel = goquery.NewDocumentFromNode(e.node).Selection
	}
	return e.sel
}

func (e *Element) TextContent() string {
	return e.selection().Text()
}

func (e *Element) InnerHTML() string {
	markup, err := e.selection().Html()
	if err != nil {
		return ""
	}
	return markup
}

func (e *Element) SetInnerHTML(markup string) {
	e.selection().SetHtml(markup)
}

// SetDisabled sets or clears the disabled attribute on form-associated
// elements and leaves every other element untouched.
func (e *Element) SetDisabled(disabled bool) {
	if !disableable[e.node.DataAtom] {
		return
	}
	if disabled {
		e.selection().SetAttr("disabled", "")
		return
	}
	e.selection().RemoveAttr("disabled")
}

// Disabled reports whether the disabled attribute is present.
func (e *Element) Disabled() bool {
	_, ok := e.selection().Attr("disabled")
	return ok
}

func (e *Element) SetStyleDisplay(value string) {
	style, _ := e.selection().Attr("style")
	decls := setStyle(parseStyle(style), "display", strings.TrimSpace(value))
	if formatted := formatStyle(decls); formatted != "" {
		e.selection().SetAttr("style", formatted)
		return
	}
	e.selection().RemoveAttr("style")
}

// StyleDisplay returns the inline display value, or "" when none is set.
func (e *Element) StyleDisplay() string {
	style, _ := e.selection().Attr("style")
	value, _ := lookupStyle(parseStyle(style), "display")
	return displayValue(value)
}

func (e *Element) ToggleClass(name string, on bool) {
	if on {
		e.selection().AddClass(name)
		return
	}
	e.selection().RemoveClass(name)
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	return e.selection().HasClass(name)
}

// ComputedDisplay approximates the used display value: an inline display
// declaration wins, then the hidden attribute, then the element's default.
func (e *Element) ComputedDisplay() string {
	if value := e.StyleDisplay(); value != "" {
		return value
	}
	if _, hidden := e.selection().Attr("hidden"); hidden {
		return "none"
	}
	if value, ok := defaultDisplay[e.node.DataAtom]; ok {
		return value
	}
	return "inline"
}

// OuterHTML serializes the element itself.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

var disableable = map[atom.Atom]bool{
	atom.Button:   true,
	atom.Input:    true,
	atom.Select:   true,
	atom.Textarea: true,
	atom.Fieldset: true,
	atom.Optgroup: true,
	atom.Option:   true,
}

var defaultDisplay = map[atom.Atom]string{
	atom.Address:    "block",
	atom.Article:    "block",
	atom.Aside:      "block",
	atom.Blockquote: "block",
	atom.Details:    "block",
	atom.Dialog:     "block",
	atom.Div:        "block",
	atom.Dl:         "block",
	atom.Fieldset:   "block",
	atom.Figure:     "block",
	atom.Footer:     "block",
	atom.Form:       "block",
	atom.H1:         "block",
	atom.H2:         "block",
	atom.H3:         "block",
	atom.H4:         "block",
	atom.H5:         "block",
	atom.H6:         "block",
	atom.Header:     "block",
	atom.Hr:         "block",
	atom.Main:       "block",
	atom.Nav:        "block",
	atom.Ol:         "block",
	atom.P:          "block",
	atom.Pre:        "block",
	atom.Section:    "block",
	atom.Ul:         "block",
	atom.Li:         "list-item",
	atom.Summary:    "block",
	atom.Table:      "table",
	atom.Tr:         "table-row",
	atom.Td:         "table-cell",
	atom.Th:         "table-cell",
	atom.Button:     "inline-block",
	atom.Input:      "inline-block",
	atom.Select:     "inline-block",
	atom.Textarea:   "inline-block",
	atom.Head:       "none",
	atom.Script:     "none",
	atom.Style:      "none",
	atom.Template:   "none",
}
