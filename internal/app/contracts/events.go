package contracts

import (
	"context"

	"medibook-service/internal/app/models"
)

// EventPublisher pushes template lifecycle events to the message broker.
// Publish failures must never fail the triggering template operation; the
// caller logs and continues.
type EventPublisher interface {
	PublishTemplateLifecycle(ctx context.Context, event models.TemplateLifecycleEvent) error
}
