package publisher

import (
	"context"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RabbitMQPublisher pushes template lifecycle events onto a durable queue
// through the default exchange.
type RabbitMQPublisher struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger) (contracts.EventPublisher, error) {
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

	return &RabbitMQPublisher{ch: ch, log: log}, nil
}

func (p *RabbitMQPublisher) PublishTemplateLifecycle(ctx context.Context, event models.TemplateLifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
	}
	if err := p.ch.PublishWithContext(ctx, "", constvars.QueueTemplateLifecycle, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.QueueTemplateLifecycle)
	}

	p.log.Debug("published template lifecycle event",
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingTemplateKey, event.TemplateID),
	)
	return nil
}
