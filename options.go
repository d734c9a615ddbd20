package buttonstate

import "time"

// WithInitialState overrides the initial state. Only fields set on the patch
// are applied.
func WithInitialState(p Patch) Option {
	return override(func(c *Config) {
		c.State = c.State.merge(p)
	})
}

// WithLoadingClass sets the class toggled while loading.
func WithLoadingClass(name string) Option {
	return override(func(c *Config) {
		c.Loading.Class = name
	})
}

// WithDisabledClass sets the class toggled while disabled.
func WithDisabledClass(name string) Option {
	return override(func(c *Config) {
		c.Disabled.Class = name
	})
}

// WithShowClass sets the class toggled while visible.
func WithShowClass(name string) Option {
	return override(func(c *Config) {
		c.Display.Show.Class = name
	})
}

// WithHideClass sets the class toggled while hidden.
func WithHideClass(name string) Option {
	return override(func(c *Config) {
		c.Display.Hide.Class = name
	})
}

// WithLoadingHTML uses markup as the loading content.
func WithLoadingHTML(markup string) Option {
	return WithLoadingContent(Literal(markup))
}

// WithLoadingGenerator derives the loading content from the element's
// original markup.
func WithLoadingGenerator(fn func(original string) string) Option {
	return WithLoadingContent(Generator(fn))
}

// WithLoadingExpression evaluates expr with the given engine ("expr", "cel"
// or "js") to produce the loading content.
func WithLoadingExpression(engine, expr string) Option {
	return WithLoadingContent(Expression(engine, expr))
}

// WithLoadingContent sets the loading content source.
func WithLoadingContent(content Content) Option {
	return override(func(c *Config) {
		c.Loading.HTML = content
	})
}

// WithLoadingIcon appends fragment to the loading content.
func WithLoadingIcon(fragment string) Option {
	return override(func(c *Config) {
		c.Loading.Icon = fragment
	})
}

// WithOnChange registers the change notification callback.
func WithOnChange(fn ChangeFunc) Option {
	return override(func(c *Config) {
		c.OnChange = fn
	})
}

// WithEvaluator replaces the engine-selected evaluator for expression content.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *buttonConfig) {
		cfg.evaluator = e
	}
}

// WithProgramCache registers a program cache used when compiling expressions.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *buttonConfig) {
		cfg.programCache = cache
	}
}

// WithContentArgs exposes args to loading content expressions as `args`.
func WithContentArgs(args map[string]any) Option {
	return func(cfg *buttonConfig) {
		cfg.contentArgs = cloneMap(args)
	}
}

// WithRenderLogger attaches a logger receiving one event per render pass.
func WithRenderLogger(logger RenderLogger) Option {
	return func(cfg *buttonConfig) {
		if logger == nil {
			cfg.logger = noopRenderLogger{}
			return
		}
		cfg.logger = logger
	}
}

// WithClock overrides the time source used for events and expressions.
func WithClock(now func() time.Time) Option {
	return func(cfg *buttonConfig) {
		cfg.now = now
	}
}

func override(fn func(*Config)) Option {
	return func(cfg *buttonConfig) {
		cfg.overrides = append(cfg.overrides, fn)
	}
}
