package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Port        string
	StoreDriver string
	DatabaseURL string
	MongoURI    string
	MongoDB     string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string
	MailFromName string

	Timezone      string
	AlertInterval time.Duration // 0 desliga o agendador
	RunTimeout    time.Duration
	RabbitURL     string // vazio desliga fila

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	return &Config{
		Port:        getenv("PORT", "8080"),
		StoreDriver: getenv("STORE_DRIVER", StorePostgres),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getenv("MONGO_DB", "pedidos"),

		MailHost:     getenv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:     parseInt("MAIL_PORT", 587),
		MailUser:     getenvAny("", "MAIL_USER", "GMAIL_USER"),
		MailPass:     getenvAny("", "MAIL_PASS", "GMAIL_APP_PASS"),
		MailFromName: os.Getenv("MAIL_FROM_NAME"),

		Timezone:      getenv("ALERT_TIMEZONE", "America/Sao_Paulo"),
		AlertInterval: parseDuration("ALERT_INTERVAL", 0),
		RunTimeout:    parseDuration("RUN_TIMEOUT", 2*time.Minute),
		RabbitURL:     os.Getenv("RABBITMQ_URL"),

		ReadHeaderTimeout: parseDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL é obrigatório com STORE_DRIVER=%s", c.StoreDriver)
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI é obrigatório com STORE_DRIVER=%s", c.StoreDriver)
		}
	default:
		return fmt.Errorf("STORE_DRIVER desconhecido: %q", c.StoreDriver)
	}

	if c.MailUser == "" {
		return fmt.Errorf("MAIL_USER deve estar configurado")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location é o fuso usado para decidir o que é "hoje".
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ALERT_TIMEZONE inválido %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvAny(def string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func parseDuration(env string, def time.Duration) time.Duration {
	if v := os.Getenv(env); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseInt(env string, def int) int {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
