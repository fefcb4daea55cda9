package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/alertas-pedidos/internal/app"
	"github.com/xavierca1/alertas-pedidos/internal/config"
	"github.com/xavierca1/alertas-pedidos/internal/infra/http/handlers"
	"github.com/xavierca1/alertas-pedidos/internal/infra/http/middleware"
	"github.com/xavierca1/alertas-pedidos/internal/infra/queue"
	"github.com/xavierca1/alertas-pedidos/internal/infra/worker"
)

func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Agendador (opcional)
	if cfg.AlertInterval > 0 {
		scheduler := worker.NewAlertScheduler(application.Runner, cfg.AlertInterval, cfg.RunTimeout)
		go scheduler.Start(ctx)
	}

	// 2. Consumidor de disparos (opcional)
	if application.RabbitMQ != nil {
		consumer := queue.NewWorker(application.RabbitMQ.Ch, application.Runner, cfg.RunTimeout)
		go func() {
			if err := consumer.Start(ctx, queue.TriggerQueueName); err != nil {
				log.Printf("❌ Consumidor de disparos parou: %v", err)
			}
		}()
	}

	// 3. Handlers
	alertHandler := handlers.NewAlertHandler(application.Runner)
	healthHandler := handlers.NewHealthHandler(application.Checks)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/alertas/executar", alertHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		log.Printf("🔥 Servidor de alertas rodando na porta %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
