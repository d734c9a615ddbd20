package buttonstate

import "github.com/goliatone/go-buttonstate/pkg/activity"

// WithActivityHooks attaches hooks notified when a button binds its targets
// and whenever a state change passes change detection. Nil hooks are dropped.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := hooks.Clone()
	return func(cfg *buttonConfig) {
		cfg.activityHooks = normalized
	}
}

// WithActivityChannel sets the channel stamped on emitted activity events.
func WithActivityChannel(channel string) Option {
	return func(cfg *buttonConfig) {
		cfg.channel = channel
	}
}

// WithActor sets the actor id stamped on emitted activity events.
func WithActor(actorID string) Option {
	return func(cfg *buttonConfig) {
		cfg.actorID = actorID
	}
}
