package buttonstate

import (
	"context"

	"github.com/goliatone/go-buttonstate/pkg/activity"
)

// render reconciles every attached target with the current state. Detached
// targets are skipped and picked up again once reattached; without a document
// every target counts as attached. When dirty, the change callback and
// activity hooks run after all targets are written.
func (b *Button) render(previous State, dirty bool) {
	start := b.opts.clock()
	event := RenderEvent{ButtonID: b.id, Dirty: dirty}
	now := start
	ctx := ContentContext{Now: &now}

	for _, target := range b.targets {
		if b.doc != nil && !b.doc.Contains(target.Element) {
			event.Skipped++
			continue
		}
		loadingHTML, err := b.content.render(target, ctx)
		if err != nil {
			event.Errors = append(event.Errors, err)
		}
		b.apply(target, loadingHTML)
		event.Rendered++
	}

	if dirty {
		if b.config.OnChange != nil {
			b.config.OnChange(b.state.Clone(), b.Dom())
		}
		if err := b.emitChanged(previous); err != nil {
			event.Errors = append(event.Errors, err)
		}
	}

	event.State = b.state.Clone()
	event.Duration = b.opts.clock().Sub(start)
	b.logger.LogRender(event)
}

func (b *Button) apply(target Target, loadingHTML string) {
	el := target.Element
	state := b.state

	el.SetDisabled(state.Disabled)
	if state.Loading {
		el.SetInnerHTML(loadingHTML)
	} else {
		el.SetInnerHTML(target.OriginalHTML)
	}
	if state.Display {
		el.SetStyleDisplay(target.restoreDisplay())
	} else {
		el.SetStyleDisplay(displayNone)
	}

	toggle(el, b.config.Loading.Class, state.Loading)
	toggle(el, b.config.Disabled.Class, state.Disabled)
	toggle(el, b.config.Display.Show.Class, state.Display)
	toggle(el, b.config.Display.Hide.Class, !state.Display)
}

// toggle skips empty class names, which a class list cannot hold.
func toggle(el Element, class string, on bool) {
	if class == "" {
		return
	}
	el.ToggleClass(class, on)
}

func (b *Button) emitChanged(previous State) error {
	if !b.activity.Enabled() {
		return nil
	}
	event := activity.BuildChangedEvent(activity.ButtonEventInput{
		ButtonID:   b.id,
		Targets:    len(b.targets),
		OldState:   previous.Map(),
		NewState:   b.state.Map(),
		OccurredAt: b.opts.clock(),
	})
	return b.activity.Emit(context.Background(), event)
}
