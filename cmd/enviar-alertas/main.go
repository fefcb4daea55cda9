package main

import (
	"context"
	"log"
	"os"

	"github.com/xavierca1/alertas-pedidos/internal/app"
	"github.com/xavierca1/alertas-pedidos/internal/config"
)

// Execução avulsa (cron, job agendado): uma varredura e sai com 1 em caso de falha.
func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RunTimeout)
		defer cancel()
	}

	report, err := application.Runner.Execute(ctx)
	application.Close()

	if err != nil {
		log.Printf("❌ Erro ao executar a função de envio de alertas: %v", err)
		os.Exit(1)
	}
	log.Println(report.Message)
	if !report.Success {
		os.Exit(1)
	}
}
