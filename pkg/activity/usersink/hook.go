// Package usersink forwards button activity to a go-users ActivitySink.
package usersink

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-buttonstate/pkg/activity"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// Hook adapts activity events to a go-users ActivitySink.
type Hook struct {
	Sink usertypes.ActivitySink
}

// Notify maps the event into an ActivityRecord and forwards it to the sink.
// Identifiers that are not UUIDs are recorded as uuid.Nil and kept verbatim
// in the record data.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil {
		return nil
	}

	normalized := activity.NormalizeEvent(event)
	if normalized.Verb == "" || normalized.ObjectType == "" || normalized.ObjectID == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	data := map[string]any{}
	for key, value := range normalized.Metadata {
		data[key] = value
	}
	record := usertypes.ActivityRecord{
		ActorID:    parseUUID(normalized.ActorID, "actor_id", data),
		UserID:     parseUUID(normalized.UserID, "user_id", data),
		TenantID:   parseUUID(normalized.TenantID, "tenant_id", data),
		Verb:       normalized.Verb,
		ObjectType: normalized.ObjectType,
		ObjectID:   normalized.ObjectID,
		Channel:    normalized.Channel,
		OccurredAt: normalized.OccurredAt,
	}
	if len(data) > 0 {
		record.Data = data
	}

	if err := h.Sink.Log(ctx, record); err != nil {
		return fmt.Errorf("usersink: log %s %s: %w", record.Verb, record.ObjectID, err)
	}
	return nil
}

func parseUUID(input, key string, data map[string]any) uuid.UUID {
	value := strings.TrimSpace(input)
	if value == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		data[key] = value
		return uuid.Nil
	}
	return id
}
