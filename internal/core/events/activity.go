package events

import (
	"context"
	"log/slog"
)

// RegisterActivityLogger subscribes an activity feed handler for every
// expense event so spending changes show up in the structured logs.
func RegisterActivityLogger(bus *EventBus, logger *slog.Logger) {
	handler := func(ctx context.Context, event Event) error {
		logger.Info("activity",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		EventTypeExpenseCreated,
		EventTypeExpenseUpdated,
		EventTypeExpenseDeleted,
	} {
		bus.Subscribe(eventType, handler)
	}
}
