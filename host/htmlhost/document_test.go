package htmlhost_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-buttonstate/host/htmlhost"
)

const page = `<html><body>
<form>
  <button id="save" class="btn primary">Save <b>now</b></button>
  <button id="cancel" class="btn" style="display: inline-flex; color: red">Cancel</button>
  <a id="link" class="btn" href="#">Link</a>
  <div id="panel" hidden>Panel</div>
</form>
</body></html>`

func mustParse(t *testing.T) *htmlhost.Document {
	t.Helper()
	doc, err := htmlhost.ParseString(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestQuerySelectorAllDocumentOrder(t *testing.T) {
	doc := mustParse(t)

	matches := doc.QuerySelectorAll(".btn")
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	ids := []string{"save", "cancel", "link"}
	for i, match := range matches {
		el := match.(*htmlhost.Element)
		if got := attr(el, "id"); got != ids[i] {
			t.Fatalf("match %d: expected id %q, got %q", i, ids[i], got)
		}
	}
}

func TestQuerySelectorAllInvalidSelector(t *testing.T) {
	doc := mustParse(t)
	if got := doc.QuerySelectorAll("button[[["); got != nil {
		t.Fatalf("expected no matches for invalid selector, got %d", len(got))
	}
	if got := doc.QuerySelectorAll("#missing"); got != nil {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestElementContentAccessors(t *testing.T) {
	doc := mustParse(t)
	save := doc.Find("#save")

	if got := save.InnerHTML(); got != "Save <b>now</b>" {
		t.Fatalf("unexpected inner html %q", got)
	}
	if got := save.TextContent(); got != "Save now" {
		t.Fatalf("unexpected text %q", got)
	}

	save.SetInnerHTML("Saving…<i class=\"spin\"></i>")
	if got := save.InnerHTML(); got != "Saving…<i class=\"spin\"></i>" {
		t.Fatalf("unexpected inner html after set %q", got)
	}
}

func TestElementDisabledOnlyForFormControls(t *testing.T) {
	doc := mustParse(t)
	save := doc.Find("#save")
	link := doc.Find("#link")

	save.SetDisabled(true)
	link.SetDisabled(true)
	if !save.Disabled() {
		t.Fatalf("expected button to be disabled")
	}
	if link.Disabled() {
		t.Fatalf("anchors cannot be disabled")
	}

	save.SetDisabled(false)
	if save.Disabled() {
		t.Fatalf("expected disabled attribute removed")
	}
}

func TestElementComputedDisplay(t *testing.T) {
	doc := mustParse(t)

	cases := map[string]string{
		"#save":   "inline-block",
		"#cancel": "inline-flex",
		"#link":   "inline",
		"#panel":  "none",
		"form":    "block",
	}
	for selector, want := range cases {
		if got := doc.Find(selector).ComputedDisplay(); got != want {
			t.Fatalf("%s: expected %q, got %q", selector, want, got)
		}
	}
}

func TestElementStyleDisplayKeepsOtherDeclarations(t *testing.T) {
	doc := mustParse(t)
	cancel := doc.Find("#cancel")

	cancel.SetStyleDisplay("none")
	if got := attr(cancel, "style"); got != "display: none; color: red;" {
		t.Fatalf("unexpected style %q", got)
	}
	cancel.SetStyleDisplay("")
	if got := attr(cancel, "style"); got != "color: red;" {
		t.Fatalf("unexpected style after unset %q", got)
	}

	save := doc.Find("#save")
	save.SetStyleDisplay("none")
	save.SetStyleDisplay("")
	if hasAttr(save, "style") {
		t.Fatalf("expected empty style attribute to be removed")
	}
}

func TestElementToggleClass(t *testing.T) {
	doc := mustParse(t)
	save := doc.Find("#save")

	save.ToggleClass("loading", true)
	save.ToggleClass("loading", true)
	if !save.HasClass("loading") || !save.HasClass("primary") {
		t.Fatalf("expected classes to be present: %q", attr(save, "class"))
	}
	save.ToggleClass("loading", false)
	if save.HasClass("loading") {
		t.Fatalf("expected loading class removed: %q", attr(save, "class"))
	}
}

func TestDetachAndAttach(t *testing.T) {
	doc := mustParse(t)
	save := doc.Find("#save")

	if !doc.Contains(save) {
		t.Fatalf("expected element to be contained")
	}
	parent := doc.Detach(save)
	if parent == nil {
		t.Fatalf("expected former parent")
	}
	if doc.Contains(save) {
		t.Fatalf("detached element should not be contained")
	}
	if doc.Detach(save) != nil {
		t.Fatalf("detaching twice should return nil")
	}
	if err := doc.Attach(parent, save); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if !doc.Contains(save) {
		t.Fatalf("reattached element should be contained")
	}
	if err := doc.Attach(parent, save); err == nil {
		t.Fatalf("expected error attaching an attached element")
	}
}

func TestContainsRejectsForeignElements(t *testing.T) {
	doc := mustParse(t)
	other := mustParse(t)
	if doc.Contains(other.Find("#save")) {
		t.Fatalf("element from another document should not be contained")
	}
	if doc.Contains(nil) {
		t.Fatalf("nil element should not be contained")
	}
}

func TestRender(t *testing.T) {
	doc := mustParse(t)
	doc.Find("#save").ToggleClass("loading", true)

	out, err := doc.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `class="btn primary loading"`) {
		t.Fatalf("expected rendered class change, got %s", out)
	}

	var buf strings.Builder
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != out {
		t.Fatalf("WriteTo and Render disagree")
	}
}

func attr(el *htmlhost.Element, name string) string {
	for _, a := range el.Node().Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(el *htmlhost.Element, name string) bool {
	for _, a := range el.Node().Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
