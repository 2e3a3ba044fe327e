package commands

import (
	"context"
	"log/slog"

	"storefront-orders/internal/pkg/clock"
	"storefront-orders/internal/usecase/shared"
)

// publishEvent runs after commit; a failed publish is logged and never undoes
// the committed change.
func publishEvent(ctx context.Context, pub shared.EventPublisher, logger *slog.Logger, clk clock.Clock, name string, payload map[string]any) {
	if pub == nil {
		return
	}
	e := shared.Event{Name: name, OccurredAt: clk.Now(), Payload: payload}
	if err := pub.Publish(ctx, e); err != nil {
		logger.Warn("failed to publish event", "event", name, "error", err.Error())
	}
}
