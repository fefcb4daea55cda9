package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName     = "ex.alertas"
	TriggerQueueName = "q.alertas.disparos"
	ReportQueueName  = "q.alertas.relatorios"
	DLQName          = "q.alertas.disparos.dlq"
	DLXName          = "ex.alertas.dlx" // Dead Letter Exchange
	TriggerKey       = "k.disparo"
	ReportKey        = "k.relatorio"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("falha ao declarar topologia: %w", err)
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func (r *RabbitMQ) Close() {
	if r.Ch != nil {
		r.Ch.Close()
	}
	if r.Conn != nil {
		r.Conn.Close()
	}
}

func setupTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(DLQName, true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.QueueBind(DLQName, TriggerKey, DLXName, false, nil); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return err
	}

	// Disparo rejeitado (JSON podre) vai para a DLQ
	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName,
		"x-dead-letter-routing-key": TriggerKey,
	}
	if _, err := ch.QueueDeclare(TriggerQueueName, true, false, false, false, args); err != nil {
		return err
	}
	if err := ch.QueueBind(TriggerQueueName, TriggerKey, ExchangeName, false, nil); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(ReportQueueName, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(ReportQueueName, ReportKey, ExchangeName, false, nil)
}
