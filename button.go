// Package buttonstate binds a loading/disabled/visible state to page elements
// and reconciles it into their content, disabled flag, display and classes on
// every change.
//
// A Button resolves its configuration and targets once, at construction.
// Every action merges a partial state, renders all attached targets and, when
// the state actually changed, notifies the change callback and activity
// hooks. Everything runs synchronously on the caller's goroutine.
//
//	btn := buttonstate.New(doc, buttonstate.Query("#save"),
//	    buttonstate.WithLoadingGenerator(func(string) string { return "Saving…" }),
//	    buttonstate.WithLoadingIcon("<spinner/>"),
//	)
//	btn.Loading()       // content "Saving…<spinner/>", disabled
//	btn.Loading(false)  // original content restored
package buttonstate

import (
	"context"

	"github.com/goliatone/go-buttonstate/layering"
	"github.com/goliatone/go-buttonstate/pkg/activity"
	"github.com/google/uuid"
)

// Button is a state binding over a fixed set of targets. It is not safe for
// concurrent use.
type Button struct {
	id       string
	doc      Document
	config   Config
	opts     buttonConfig
	dom      []Element
	targets  []Target
	state    State
	content  *contentRenderer
	logger   RenderLogger
	activity *activity.Emitter
}

// New binds the elements selected by sel. Configuration comes from the
// defaults and opts only.
func New(doc Document, sel Selector, opts ...Option) *Button {
	return NewWithOptions(doc, sel, nil, opts...)
}

// NewWithOptions binds the elements selected by sel using sparse options
// maps, ordered strongest to weakest, then applies opts on top.
func NewWithOptions(doc Document, sel Selector, layers []map[string]any, opts ...Option) *Button {
	bc := applyOptions(opts)
	cfg := ResolveConfig(layering.Merge(layers...))
	for _, fn := range bc.overrides {
		fn(&cfg)
	}

	dom := sel.Resolve(doc)
	b := &Button{
		id:       uuid.NewString(),
		doc:      doc,
		config:   cfg,
		opts:     bc,
		dom:      dom,
		targets:  bindTargets(dom),
		state:    cfg.State.apply(DefaultState()),
		logger:   bc.renderLogger(),
		activity: activity.NewEmitter(bc.activityHooks, bc.channel, bc.actorID),
	}
	b.content = newContentRenderer(cfg, bc)
	if len(bc.errs) > 0 {
		b.logger.LogRender(RenderEvent{ButtonID: b.id, State: b.state.Clone(), Errors: append([]error(nil), bc.errs...)})
	}
	b.emitBound()
	return b
}

// ID identifies the button in activity events and render logs.
func (b *Button) ID() string {
	return b.id
}

// Config returns the resolved configuration.
func (b *Button) Config() Config {
	cfg := b.config
	cfg.State.Extra = cloneMap(cfg.State.Extra)
	return cfg
}

// Dom returns the bound elements in binding order.
func (b *Button) Dom() []Element {
	return append([]Element(nil), b.dom...)
}

// Targets returns the bindings with their captured baselines.
func (b *Button) Targets() []Target {
	return append([]Target(nil), b.targets...)
}

// State returns a copy of the current state.
func (b *Button) State() State {
	return b.state.Clone()
}

// SetState merges partial into the state and renders. partial may be a
// Patch, a State or a map[string]any; any other value is ignored without
// rendering.
func (b *Button) SetState(partial any) *Button {
	patch, ok := toPatch(partial)
	if !ok {
		return b
	}
	previous := b.state.Clone()
	b.state = patch.apply(b.state)
	b.render(previous, !Equal(previous, b.state))
	return b
}

// Refresh renders the current state without notifying.
func (b *Button) Refresh() {
	b.render(b.state, false)
}

// Loading sets loading and disabled together. The flag defaults to true.
func (b *Button) Loading(v ...bool) *Button {
	flag := flagOrTrue(v)
	return b.SetState(Patch{Loading: Bool(flag), Disabled: Bool(flag)})
}

// Disabled sets the disabled flag. The flag defaults to true.
func (b *Button) Disabled(v ...bool) *Button {
	return b.SetState(Patch{Disabled: Bool(flagOrTrue(v))})
}

// Show sets the display flag. The flag defaults to true.
func (b *Button) Show(v ...bool) *Button {
	return b.SetState(Patch{Display: Bool(flagOrTrue(v))})
}

// Hide clears the display flag. The flag defaults to true.
func (b *Button) Hide(v ...bool) *Button {
	return b.SetState(Patch{Display: Bool(!flagOrTrue(v))})
}

func flagOrTrue(v []bool) bool {
	if len(v) == 0 {
		return true
	}
	return v[0]
}

func (b *Button) emitBound() {
	if !b.activity.Enabled() {
		return
	}
	event := activity.BuildBoundEvent(activity.ButtonEventInput{
		ButtonID:   b.id,
		Targets:    len(b.targets),
		NewState:   b.state.Map(),
		OccurredAt: b.opts.clock(),
	})
	if err := b.activity.Emit(context.Background(), event); err != nil {
		b.logger.LogRender(RenderEvent{ButtonID: b.id, State: b.state.Clone(), Errors: []error{err}})
	}
}
