package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/alertas-pedidos/internal/usecase"
)

// AlertScheduler roda a varredura de pendências em intervalo fixo. Não há trava
// entre processos: duas instâncias agendadas enviam alertas em dobro.
type AlertScheduler struct {
	runner       usecase.AlertRunner
	tickInterval time.Duration
	runTimeout   time.Duration
}

func NewAlertScheduler(runner usecase.AlertRunner, tickInterval, runTimeout time.Duration) *AlertScheduler {
	if tickInterval <= 0 {
		tickInterval = 24 * time.Hour
	}
	return &AlertScheduler{
		runner:       runner,
		tickInterval: tickInterval,
		runTimeout:   runTimeout,
	}
}

func (w *AlertScheduler) Start(ctx context.Context) {
	log.Printf("🕒 Agendador de alertas iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Agendador de alertas encerrado")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *AlertScheduler) runOnce(ctx context.Context) {
	if w.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.runTimeout)
		defer cancel()
	}

	report, err := w.runner.Execute(ctx)
	if err != nil {
		log.Printf("❌ Erro na varredura agendada: %v", err)
		return
	}
	if !report.Success {
		log.Printf("⚠️ Varredura %s terminou com falhas: %s", report.RunID, report.Message)
	}
}
