package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/alertas-pedidos/internal/usecase"
)

// Worker consome pedidos de disparo e roda uma varredura por mensagem.
type Worker struct {
	Channel    *amqp.Channel
	Runner     usecase.AlertRunner
	RunTimeout time.Duration
}

func NewWorker(ch *amqp.Channel, runner usecase.AlertRunner, runTimeout time.Duration) *Worker {
	return &Worker{
		Channel:    ch,
		Runner:     runner,
		RunTimeout: runTimeout,
	}
}

func (w *Worker) Start(ctx context.Context, queueName string) error {
	// uma varredura por vez neste processo
	if err := w.Channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("falha ao configurar QoS: %w", err)
	}

	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf(" [*] Worker de alertas aguardando na fila '%s'", queueName)
	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [WORKER] Worker de alertas encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("canal de entregas fechado")
			}
			w.HandleDelivery(ctx, d)
		}
	}
}

// HandleDelivery processa uma mensagem de disparo. Falha de leitura ou envio não
// volta para a fila: a próxima execução agendada cobre as mesmas pendências.
func (w *Worker) HandleDelivery(ctx context.Context, d amqp.Delivery) {
	var payload TriggerPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("❌ [WORKER] JSON Inválido: %s", err)
		d.Nack(false, false)
		return
	}

	log.Printf("📥 [WORKER] Disparo recebido (origem: %s)", payload.Origin)

	runCtx := ctx
	if w.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, w.RunTimeout)
		defer cancel()
	}

	report, err := w.Runner.Execute(runCtx)
	switch {
	case err != nil:
		log.Printf("❌ [WORKER] Execução falhou: %v", err)
	case !report.Success:
		log.Printf("⚠️ [WORKER] Execução %s com falhas: %s", report.RunID, report.Message)
	default:
		log.Printf("✅ [WORKER] Execução %s concluída", report.RunID)
	}
	d.Ack(false)
}
