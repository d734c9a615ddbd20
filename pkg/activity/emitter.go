package activity

import (
	"context"
	"strings"
)

// DefaultChannel is applied to events emitted without a channel.
const DefaultChannel = "buttonstate"

// Emitter stamps a default channel and actor onto events before fanning them
// out to hooks.
type Emitter struct {
	hooks   Hooks
	channel string
	actorID string
}

// NewEmitter constructs an emitter. An empty channel uses DefaultChannel.
func NewEmitter(hooks Hooks, channel, actorID string) *Emitter {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = DefaultChannel
	}
	return &Emitter{
		hooks:   hooks.Clone(),
		channel: channel,
		actorID: strings.TrimSpace(actorID),
	}
}

// Enabled reports whether emissions should be attempted.
func (e *Emitter) Enabled() bool {
	return e != nil && e.hooks.Enabled()
}

// Emit forwards the event to all hooks.
func (e *Emitter) Emit(ctx context.Context, event Event) error {
	if !e.Enabled() {
		return nil
	}
	if strings.TrimSpace(event.Channel) == "" {
		event.Channel = e.channel
	}
	if strings.TrimSpace(event.ActorID) == "" {
		event.ActorID = e.actorID
	}
	return e.hooks.Notify(ctx, event)
}
