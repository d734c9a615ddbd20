package buttonstate

import (
	"time"

	"github.com/goliatone/go-buttonstate/pkg/activity"
)

// Element is a live handle to a page element. Implementations are provided by
// the host environment; the engine never creates or owns elements.
type Element interface {
	TextContent() string
	InnerHTML() string
	SetInnerHTML(markup string)
	// SetDisabled must be a no-op on elements that cannot be disabled.
	SetDisabled(disabled bool)
	// SetStyleDisplay sets the inline display value. An empty value removes
	// the inline declaration so the stylesheet applies.
	SetStyleDisplay(value string)
	ToggleClass(name string, on bool)
	ComputedDisplay() string
}

// Document resolves selectors and answers containment checks for elements.
type Document interface {
	QuerySelectorAll(selector string) []Element
	Contains(el Element) bool
}

// ChangeFunc receives the post-render state and the bound elements whenever a
// SetState call produced a structurally different state.
type ChangeFunc func(state State, elements []Element)

// Config is the resolved, immutable configuration of a Button.
type Config struct {
	State    Patch
	Loading  LoadingConfig
	Disabled ClassConfig
	Display  DisplayConfig
	OnChange ChangeFunc
}

// LoadingConfig controls the loading class and the content shown while loading.
type LoadingConfig struct {
	Class string
	HTML  Content
	Icon  string
}

// ClassConfig holds a single class name.
type ClassConfig struct {
	Class string
}

// DisplayConfig holds the show and hide class names.
type DisplayConfig struct {
	Show ClassConfig
	Hide ClassConfig
}

// Default class names applied when options leave them unset.
const (
	DefaultLoadingClass  = "loading"
	DefaultDisabledClass = "disabled"
	DefaultShowClass     = "show"
	DefaultHideClass     = "hide"
)

// ContentContext carries inputs handed to loading content expressions.
type ContentContext struct {
	Original string
	Text     string
	Now      *time.Time
	Args     map[string]any
}

func (ctx ContentContext) withDefaults() ContentContext {
	if ctx.Now == nil {
		now := time.Now()
		ctx.Now = &now
	}
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	return ctx
}

func (ctx ContentContext) timestamp() time.Time {
	return *ctx.withDefaults().Now
}

// Evaluator executes loading content expressions.
type Evaluator interface {
	Evaluate(ctx ContentContext, expr string) (any, error)
	Compile(expr string) (CompiledRule, error)
}

// CompiledRule is a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx ContentContext) (any, error)
}

// ProgramCache stores compiled expression programs keyed by expression
// strings. A cache may be shared between buttons; it is owned by the caller.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Option configures a Button at construction time. Options are applied after
// the options map has been resolved, so they take precedence over it.
type Option func(*buttonConfig)

type buttonConfig struct {
	overrides     []func(*Config)
	evaluator     Evaluator
	programCache  ProgramCache
	functions     *FunctionRegistry
	contentArgs   map[string]any
	logger        RenderLogger
	activityHooks activity.Hooks
	channel       string
	actorID       string
	now           func() time.Time
	errs          []error
}

func applyOptions(opts []Option) buttonConfig {
	cfg := buttonConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (cfg buttonConfig) renderLogger() RenderLogger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return noopRenderLogger{}
}

func (cfg buttonConfig) clock() time.Time {
	if cfg.now != nil {
		return cfg.now()
	}
	return time.Now()
}
