package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

// TriggerPayload pede uma execução da varredura.
type TriggerPayload struct {
	Origin      string `json:"origin"`
	RequestedAt string `json:"requested_at,omitempty"`
}

// Publisher é o pedaço de *amqp.Channel usado pelo Producer.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishRunReport(ctx context.Context, report entity.RunReport) error {
	return p.publish(ctx, ReportKey, report)
}

func (p *RabbitMQProducer) PublishTrigger(ctx context.Context, payload TriggerPayload) error {
	return p.publish(ctx, TriggerKey, payload)
}

func (p *RabbitMQProducer) publish(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
