package buttonstate

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-buttonstate/pkg/activity"
)

func TestButtonLoadingTogglesDisabled(t *testing.T) {
	el := newFakeElement("save", "Save")
	btn := New(newFakeDocument(el), Query("#save"),
		WithLoadingGenerator(func(string) string { return "Saving…" }),
		WithLoadingIcon("<spinner/>"),
	)

	btn.Loading()
	if got := btn.State(); !got.Loading || !got.Disabled {
		t.Fatalf("expected loading and disabled, got %+v", got)
	}
	if el.html != "Saving…<spinner/>" || !el.disabled {
		t.Fatalf("unexpected element after loading: %q disabled=%v", el.html, el.disabled)
	}
	if got := el.classList(); got != "disabled loading show" {
		t.Fatalf("unexpected classes %q", got)
	}

	btn.Loading(false)
	if got := btn.State(); got.Loading || got.Disabled {
		t.Fatalf("expected loading and disabled cleared, got %+v", got)
	}
	if el.html != "Save" || el.disabled {
		t.Fatalf("expected original content restored, got %q", el.html)
	}
	if got := el.classList(); got != "show" {
		t.Fatalf("unexpected classes %q", got)
	}
}

func TestButtonLoadingWithoutContentKeepsOriginal(t *testing.T) {
	el := newFakeElement("x", "<b>Go</b>")
	btn := New(newFakeDocument(el), ElementOf(el), WithLoadingIcon("…"))

	btn.Loading()
	if el.html != "<b>Go</b>…" {
		t.Fatalf("expected original markup plus icon, got %q", el.html)
	}
}

func TestButtonActionsDefaultToTrue(t *testing.T) {
	el := newFakeElement("x", "X")
	btn := New(nil, ElementOf(el))

	btn.Disabled()
	if !btn.State().Disabled || !el.disabled {
		t.Fatalf("expected disabled")
	}
	btn.Disabled(false)
	if btn.State().Disabled || el.disabled {
		t.Fatalf("expected enabled")
	}

	btn.Hide()
	if btn.State().Display || el.style != "none" || !el.classes["hide"] || el.classes["show"] {
		t.Fatalf("expected hidden, got style=%q classes=%q", el.style, el.classList())
	}
	btn.Hide(false)
	if !btn.State().Display || el.style != "inline-block" {
		t.Fatalf("expected shown with original display, got %q", el.style)
	}
	btn.Show(false)
	if btn.State().Display {
		t.Fatalf("Show(false) should hide")
	}
	btn.Show()
	if !btn.State().Display {
		t.Fatalf("Show() should show")
	}
}

func TestButtonChangeCallbackGating(t *testing.T) {
	el := newFakeElement("x", "X")
	var calls []State
	btn := New(newFakeDocument(el), Query("#x"), WithOnChange(func(state State, elements []Element) {
		if len(elements) != 1 || elements[0] != Element(el) {
			t.Fatalf("unexpected elements in callback")
		}
		if !el.disabled {
			t.Fatalf("callback must run after targets are written")
		}
		calls = append(calls, state)
	}))

	btn.SetState(map[string]any{"disabled": true})
	btn.SetState(map[string]any{"disabled": true})
	btn.SetState(Patch{Disabled: Bool(true)})
	if len(calls) != 1 {
		t.Fatalf("expected one change notification, got %d", len(calls))
	}
	if !calls[0].Disabled {
		t.Fatalf("expected post-render state, got %+v", calls[0])
	}

	btn.SetState(map[string]any{"note": "x"})
	btn.SetState(map[string]any{"note": "x"})
	if len(calls) != 2 {
		t.Fatalf("expected extras to take part in change detection, got %d calls", len(calls))
	}
	if calls[1].Extra["note"] != "x" {
		t.Fatalf("expected extra in callback state, got %+v", calls[1])
	}
}

func TestButtonRendersEvenWithoutChange(t *testing.T) {
	el := newFakeElement("x", "X")
	btn := New(nil, ElementOf(el))

	btn.Show()
	first := el.writes
	if first == 0 {
		t.Fatalf("expected a render pass")
	}
	btn.Show()
	if el.writes <= first {
		t.Fatalf("expected an unchanged state to render again")
	}
}

func TestButtonIgnoresNonObjectState(t *testing.T) {
	el := newFakeElement("x", "X")
	renders := 0
	btn := New(nil, ElementOf(el), WithRenderLogger(RenderLoggerFunc(func(RenderEvent) { renders++ })))

	for _, input := range []any{nil, 7, "loading", true} {
		if got := btn.SetState(input); got != btn {
			t.Fatalf("SetState must return the button")
		}
	}
	if renders != 0 || el.writes != 0 {
		t.Fatalf("expected ignored input not to render, got %d renders", renders)
	}
	if got := btn.State(); !Equal(got, DefaultState()) {
		t.Fatalf("expected state untouched, got %+v", got)
	}
}

func TestButtonWithoutTargets(t *testing.T) {
	var changes int
	btn := New(newFakeDocument(), Query("#missing"), WithOnChange(func(State, []Element) { changes++ }))

	btn.Loading().Hide()
	if len(btn.Dom()) != 0 || len(btn.Targets()) != 0 {
		t.Fatalf("expected no targets")
	}
	if got := btn.State(); !got.Loading || got.Display {
		t.Fatalf("expected state to track actions, got %+v", got)
	}
	if changes != 2 {
		t.Fatalf("expected change notifications without targets, got %d", changes)
	}
}

func TestButtonBaselineIsCapturedOnce(t *testing.T) {
	el := newFakeElement("x", "Original")
	btn := New(nil, ElementOf(el), WithLoadingHTML("Busy"))

	el.html = "Changed elsewhere"
	btn.Loading().Loading(false)
	if el.html != "Original" {
		t.Fatalf("expected the bound baseline to be restored, got %q", el.html)
	}
	if btn.Targets()[0].OriginalHTML != "Original" {
		t.Fatalf("unexpected baseline %+v", btn.Targets()[0])
	}
}

func TestButtonHiddenBaselineDefersToStylesheet(t *testing.T) {
	el := newFakeElement("x", "X")
	el.display = "none"
	btn := New(nil, ElementOf(el))

	btn.Hide().Show()
	if el.style != "" {
		t.Fatalf("expected inline display cleared, got %q", el.style)
	}
}

func TestButtonSkipsDetachedTargets(t *testing.T) {
	a := newFakeElement("a", "A")
	b := newFakeElement("b", "B")
	doc := newFakeDocument(a, b)
	var events []RenderEvent
	btn := New(doc, Query("*"), WithRenderLogger(RenderLoggerFunc(func(event RenderEvent) {
		events = append(events, event)
	})))

	doc.detached[a] = true
	btn.Disabled()
	if a.writes != 0 || !b.disabled {
		t.Fatalf("expected only attached target to render")
	}

	delete(doc.detached, a)
	btn.Refresh()
	if !a.disabled {
		t.Fatalf("expected reattached target to catch up")
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 render events, got %d", len(events))
	}
	if events[0].Skipped != 1 || events[0].Rendered != 1 || !events[0].Dirty {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[1].Skipped != 0 || events[1].Rendered != 2 || events[1].Dirty {
		t.Fatalf("unexpected refresh event %+v", events[1])
	}
}

func TestButtonEmptyClassNamesAreSkipped(t *testing.T) {
	el := newFakeElement("x", "X")
	btn := New(nil, ElementOf(el),
		WithLoadingClass(""),
		WithDisabledClass("is-disabled"),
		WithShowClass(""),
		WithHideClass("is-hidden"),
	)

	btn.Loading().Hide()
	if got := el.classList(); got != "is-disabled is-hidden" {
		t.Fatalf("unexpected classes %q", got)
	}
	if _, ok := el.classes[""]; ok {
		t.Fatalf("empty class must never be toggled")
	}
}

func TestButtonInitialState(t *testing.T) {
	el := newFakeElement("x", "X")
	btn := NewWithOptions(nil, ElementOf(el),
		[]map[string]any{
			{"state": map[string]any{"disabled": true}},
			{"state": map[string]any{"disabled": false, "loading": true}},
		},
		WithInitialState(Patch{Display: Bool(false)}),
	)

	got := btn.State()
	if !got.Loading || !got.Disabled || got.Display {
		t.Fatalf("unexpected initial state %+v", got)
	}
	if el.writes != 0 {
		t.Fatalf("construction must not render")
	}
}

func TestNewWithOptionsLayers(t *testing.T) {
	el := newFakeElement("x", "X")
	btn := NewWithOptions(nil, ElementOf(el),
		[]map[string]any{
			{"loading": map[string]any{"class": "busy"}},
			nil,
			{"loading": map[string]any{"class": "ignored", "html": "Wait"}, "disabled": map[string]any{"class": "off"}},
		},
		WithDisabledClass("inert"),
	)

	cfg := btn.Config()
	if cfg.Loading.Class != "busy" || cfg.Loading.HTML.Source() != "Wait" || cfg.Disabled.Class != "inert" {
		t.Fatalf("unexpected layered config %+v", cfg)
	}

	btn.Loading()
	if el.html != "Wait" || !el.classes["busy"] || !el.classes["inert"] {
		t.Fatalf("unexpected render %q %q", el.html, el.classList())
	}
}

func TestButtonActivityEvents(t *testing.T) {
	el := newFakeElement("x", "X")
	capture := &activity.CaptureHook{}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	btn := New(nil, ElementOf(el),
		WithActivityHooks(activity.Hooks{capture}),
		WithActivityChannel("checkout"),
		WithActor("user-1"),
		WithClock(func() time.Time { return fixed }),
	)

	btn.Disabled()
	btn.Disabled()

	verbs := capture.Verbs()
	if len(verbs) != 2 || verbs[0] != activity.VerbBound || verbs[1] != activity.VerbChanged {
		t.Fatalf("unexpected verbs %v", verbs)
	}
	changed := capture.Events()[1]
	if changed.ObjectID != btn.ID() || changed.Channel != "checkout" || changed.ActorID != "user-1" {
		t.Fatalf("unexpected event identity %+v", changed)
	}
	if !changed.OccurredAt.Equal(fixed) {
		t.Fatalf("expected clock timestamp, got %v", changed.OccurredAt)
	}
	oldState, _ := changed.Metadata["old_state"].(map[string]any)
	newState, _ := changed.Metadata["new_state"].(map[string]any)
	if oldState["disabled"] != false || newState["disabled"] != true {
		t.Fatalf("unexpected state metadata %+v", changed.Metadata)
	}
	if changed.Metadata["targets"] != 1 {
		t.Fatalf("unexpected targets metadata %v", changed.Metadata["targets"])
	}
}

func TestButtonActivityErrorsAreLogged(t *testing.T) {
	el := newFakeElement("x", "X")
	boom := errors.New("boom")
	var events []RenderEvent
	btn := New(nil, ElementOf(el),
		WithActivityHooks(activity.Hooks{&activity.CaptureHook{Err: boom}}),
		WithRenderLogger(RenderLoggerFunc(func(event RenderEvent) { events = append(events, event) })),
	)

	btn.Loading()
	if !el.disabled {
		t.Fatalf("hook failure must not stop rendering")
	}
	if len(events) != 2 {
		t.Fatalf("expected bound failure and render events, got %d", len(events))
	}
	for _, event := range events {
		if len(event.Errors) != 1 || !errors.Is(event.Errors[0], boom) {
			t.Fatalf("expected hook error in %+v", event)
		}
	}
}

func TestButtonRenderEventDuration(t *testing.T) {
	el := newFakeElement("x", "X")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	var got RenderEvent
	btn := New(nil, ElementOf(el),
		WithClock(func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Millisecond)
		}),
		WithRenderLogger(RenderLoggerFunc(func(event RenderEvent) { got = event })),
	)

	btn.Refresh()
	if got.ButtonID != btn.ID() || got.Duration != time.Millisecond || got.Rendered != 1 {
		t.Fatalf("unexpected render event %+v", got)
	}
}
