package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/xavierca1/alertas-pedidos/internal/config"
	"github.com/xavierca1/alertas-pedidos/internal/entity"
	"github.com/xavierca1/alertas-pedidos/internal/infra/database"
	"github.com/xavierca1/alertas-pedidos/internal/infra/http/handlers"
	"github.com/xavierca1/alertas-pedidos/internal/infra/http/middleware"
	"github.com/xavierca1/alertas-pedidos/internal/infra/mail"
	"github.com/xavierca1/alertas-pedidos/internal/infra/mongodb"
	"github.com/xavierca1/alertas-pedidos/internal/infra/queue"
	"github.com/xavierca1/alertas-pedidos/internal/usecase"
)

// App junta as dependências de uma instância (API ou execução avulsa).
type App struct {
	Runner   usecase.AlertRunner
	RabbitMQ *queue.RabbitMQ // nil sem RABBITMQ_URL
	Checks   map[string]handlers.HealthCheck

	closers []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, _ := cfg.Location()

	a := &App{Checks: map[string]handlers.HealthCheck{}}

	// 1. Repositórios
	orderRepo, collaboratorRepo, err := a.openStore(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	// 2. Fila (opcional)
	var publisher usecase.ReportPublisher
	a.Checks["rabbitmq"] = nil
	if cfg.RabbitURL != "" {
		rmq, err := queue.NewRabbitMQ(cfg.RabbitURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.RabbitMQ = rmq
		a.closers = append(a.closers, rmq.Close)
		a.Checks["rabbitmq"] = func(ctx context.Context) error {
			if rmq.Conn.IsClosed() {
				return fmt.Errorf("connection closed")
			}
			return nil
		}
		publisher = queue.NewProducer(rmq.Ch)
	}

	// 3. Transporte de email
	sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFromName)

	// 4. UseCase
	uc := usecase.NewSendAlertsUseCase(orderRepo, collaboratorRepo, sender, publisher, loc)
	a.Runner = middleware.InstrumentRunner(uc)

	return a, nil
}

func (a *App) openStore(cfg *config.Config) (entity.OrderRepository, entity.CollaboratorRepository, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := mongodb.NewMongoClient(cfg.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("falha ao conectar no Mongo: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Disconnect(context.Background()) })
		a.Checks["mongo"] = mongoCheck(client)

		db := client.Database(cfg.MongoDB)
		log.Printf("🗄️ Lendo pedidos do Mongo (%s)", cfg.MongoDB)
		return mongodb.NewOrderRepository(db), mongodb.NewCollaboratorRepository(db), nil

	default:
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("falha ao conectar no Postgres: %w", err)
		}
		a.closers = append(a.closers, func() { db.Close() })
		a.Checks["database"] = sqlCheck(db)

		log.Println("🗄️ Lendo pedidos do Postgres")
		return database.NewOrderRepository(db), database.NewCollaboratorRepository(db), nil
	}
}

func sqlCheck(db *sql.DB) handlers.HealthCheck {
	return func(ctx context.Context) error { return db.PingContext(ctx) }
}

func mongoCheck(client *mongo.Client) handlers.HealthCheck {
	return func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
}
