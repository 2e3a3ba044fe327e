package events

import (
	"context"
	"log/slog"

	"storefront-orders/internal/usecase/shared"
)

// LogPublisher writes events to the application log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, e shared.Event) error {
	body, err := encode(e)
	if err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "event", "name", e.Name, "body", string(body))
	return nil
}
