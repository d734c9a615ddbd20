package buttonstate

import "time"

// RenderEvent describes one render pass.
type RenderEvent struct {
	ButtonID string
	Rendered int
	Skipped  int
	Dirty    bool
	State    State
	Duration time.Duration
	// Errors holds recovered failures: expression evaluation and activity
	// hook errors. They never reach the caller of the action.
	Errors []error
}

// RenderLogger records render passes.
type RenderLogger interface {
	LogRender(RenderEvent)
}

// RenderLoggerFunc adapts a function to RenderLogger.
type RenderLoggerFunc func(RenderEvent)

// LogRender implements RenderLogger.
func (f RenderLoggerFunc) LogRender(event RenderEvent) {
	if f != nil {
		f(event)
	}
}

type noopRenderLogger struct{}

func (noopRenderLogger) LogRender(RenderEvent) {}
