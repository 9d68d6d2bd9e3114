package assignments

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SyncWorker consumes template lifecycle events from the broker and replays
// them against the assignment usecase. It backs up the in-process lifecycle
// hooks: both paths are idempotent, so duplicate delivery is harmless.
type SyncWorker struct {
	ch      *amqp.Channel
	usecase AssignmentUsecase
	log     *zap.Logger
}

func NewSyncWorker(conn *amqp.Connection, usecase AssignmentUsecase, log *zap.Logger) (*SyncWorker, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.QueueTemplateLifecycle, // name
		true,                             // durable
		false,                            // autoDelete
		false,                            // exclusive
		false,                            // noWait
		nil,                              // args
	)
	if err != nil {
		return nil, err
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	return &SyncWorker{ch: ch, usecase: usecase, log: log}, nil
}

// Run blocks consuming the lifecycle queue until the context is cancelled or
// the channel closes.
func (w *SyncWorker) Run(ctx context.Context) error {
	deliveries, err := w.ch.Consume(
		constvars.QueueTemplateLifecycle, // queue
		"assignment-sync-worker",         // consumer tag
		false,                            // autoAck
		false,                            // exclusive
		false,                            // noLocal
		false,                            // noWait
		nil,                              // args
	)
	if err != nil {
		return exceptions.ErrRabbitMQConsumeQueue(err, constvars.QueueTemplateLifecycle)
	}

	w.log.Info("assignment sync worker started", zap.String("queue", constvars.QueueTemplateLifecycle))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *SyncWorker) handle(ctx context.Context, delivery amqp.Delivery) {
	var event models.TemplateLifecycleEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		// Poison message, drop it instead of redelivering forever.
		w.log.Warn("dropping undecodable lifecycle event", zap.Error(err))
		_ = delivery.Ack(false)
		return
	}

	var err error
	switch event.Event {
	case constvars.EventTemplateActivated:
		err = w.usecase.HandleTemplateActivated(ctx, event.PractitionerID, event.LocationID, event.Modality, event.Actor)
	case constvars.EventTemplateDeactivated:
		err = w.usecase.HandleTemplateDeactivated(ctx, event.PractitionerID, event.LocationID, event.Modality, event.Actor)
	default:
		w.log.Warn("ignoring unknown lifecycle event",
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.String(constvars.LoggingTemplateKey, event.TemplateID),
		)
		_ = delivery.Ack(false)
		return
	}

	if err != nil {
		w.log.Warn("failed to apply lifecycle event, requeueing",
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.String(constvars.LoggingTemplateKey, event.TemplateID),
			zap.Error(err),
		)
		_ = delivery.Nack(false, true)
		return
	}
	_ = delivery.Ack(false)
}
