package usecase

import (
	"context"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

// DigestSender entrega um digest pronto (SMTP em produção).
type DigestSender interface {
	SendDigest(ctx context.Context, d entity.Digest) error
}

type ReportPublisher interface {
	PublishRunReport(ctx context.Context, report entity.RunReport) error
}

// AlertRunner é o contrato usado pelos gatilhos (HTTP, agendador, fila).
type AlertRunner interface {
	Execute(ctx context.Context) (*entity.RunReport, error)
}
