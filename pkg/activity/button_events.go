package activity

import (
	"strings"
	"time"
)

// Verbs and object type used for button events.
const (
	VerbBound        = "buttonstate.bound"
	VerbChanged      = "buttonstate.changed"
	ObjectTypeButton = "button"
)

// ButtonEventInput describes the common fields of button events.
type ButtonEventInput struct {
	ButtonID   string
	Channel    string
	Targets    int
	OldState   map[string]any
	NewState   map[string]any
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildBoundEvent describes a button binding its targets at construction.
func BuildBoundEvent(input ButtonEventInput) Event {
	return buildButtonEvent(VerbBound, input)
}

// BuildChangedEvent describes a state change that passed change detection.
func BuildChangedEvent(input ButtonEventInput) Event {
	return buildButtonEvent(VerbChanged, input)
}

func buildButtonEvent(verb string, input ButtonEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["targets"] = input.Targets
	if input.OldState != nil {
		metadata["old_state"] = cloneMap(input.OldState)
	}
	if input.NewState != nil {
		metadata["new_state"] = cloneMap(input.NewState)
	}

	objectID := strings.TrimSpace(input.ButtonID)
	if objectID == "" {
		objectID = ObjectTypeButton
	}

	return Event{
		Verb:       verb,
		ObjectType: ObjectTypeButton,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}
