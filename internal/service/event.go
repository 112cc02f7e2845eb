package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/voltcheck/voltcheck/internal/events"
)

// EventWriter queues lifecycle events. *events.EventProducer implements it.
type EventWriter interface {
	Write(ctx context.Context, kind string, v any) error
}

func writeEvent(ctx context.Context, w EventWriter, kind string, v any) {
	if w == nil {
		return
	}
	if err := w.Write(ctx, kind, v); err != nil {
		zap.S().Named("service_handler").Errorw("failed to write event", "error", err, "event_kind", kind)
	}
}

func jobEvent(action string, id, number string) events.JobEvent {
	return events.JobEvent{JobID: id, Number: number, Action: action}
}
