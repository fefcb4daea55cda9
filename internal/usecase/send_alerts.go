package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

const (
	MsgRunSuccess = "Processo de verificação e envio de e-mails concluído."
	MsgRunFailure = "Ocorreu um erro no servidor."
)

type SendAlertsUseCase struct {
	OrderRepo        entity.OrderRepository
	CollaboratorRepo entity.CollaboratorRepository
	Sender           DigestSender
	Publisher        ReportPublisher // opcional
	Location         *time.Location
	Now              func() time.Time
}

func NewSendAlertsUseCase(
	orderRepo entity.OrderRepository,
	collaboratorRepo entity.CollaboratorRepository,
	sender DigestSender,
	publisher ReportPublisher,
	loc *time.Location,
) *SendAlertsUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &SendAlertsUseCase{
		OrderRepo:        orderRepo,
		CollaboratorRepo: collaboratorRepo,
		Sender:           sender,
		Publisher:        publisher,
		Location:         loc,
		Now:              time.Now,
	}
}

// Execute faz uma varredura completa. O erro só é devolvido quando a leitura
// inicial falha; falhas de envio ficam no relatório (Success=false) e não
// interrompem os demais colaboradores.
func (uc *SendAlertsUseCase) Execute(ctx context.Context) (*entity.RunReport, error) {
	report := &entity.RunReport{
		RunID:     uuid.New().String(),
		StartedAt: uc.Now(),
		Outcomes:  []entity.DispatchOutcome{},
	}
	log.Printf("🔎 [ALERTAS] Execução %s iniciada. Verificando pedidos...", report.RunID)

	orders, directory, err := uc.load(ctx)
	if err != nil {
		log.Printf("❌ [ALERTAS] Erro ao ler dados de entrada: %v", err)
		uc.finish(ctx, report, false, MsgRunFailure)
		return report, err
	}

	today := Today(report.StartedAt, uc.Location)
	idx := Aggregate(orders, today)
	log.Printf("📋 [ALERTAS] %d pedidos lidos, %d colaboradores com pendências", len(orders), idx.Len())

	for _, name := range idx.Names() {
		group, _ := idx.Group(name)
		report.Outcomes = append(report.Outcomes, uc.dispatch(ctx, name, group, directory))
	}

	failed := report.Count(entity.DispatchFailed)
	if failed > 0 {
		msg := fmt.Sprintf("Falha no envio de %d de %d alertas.", failed, failed+report.Count(entity.DispatchSent))
		uc.finish(ctx, report, false, msg)
		log.Printf("⚠️ [ALERTAS] Execução %s concluída com falhas: %s", report.RunID, msg)
		return report, nil
	}

	uc.finish(ctx, report, true, MsgRunSuccess)
	log.Printf("✅ [ALERTAS] Verificação de pedidos concluída com sucesso (%d enviados, %d ignorados)",
		report.Count(entity.DispatchSent), report.Count(entity.DispatchSkipped))
	return report, nil
}

func (uc *SendAlertsUseCase) load(ctx context.Context) ([]entity.Order, *CollaboratorDirectory, error) {
	orders, err := uc.OrderRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, &TechnicalError{Code: "INPUT_READ_ERROR", Message: "falha ao ler pedidos", Err: err}
	}

	units, err := uc.CollaboratorRepo.FindAllUnits(ctx)
	if err != nil {
		return nil, nil, &TechnicalError{Code: "INPUT_READ_ERROR", Message: "falha ao ler colaboradores", Err: err}
	}

	return orders, NewCollaboratorDirectory(units), nil
}

func (uc *SendAlertsUseCase) dispatch(ctx context.Context, name string, group *entity.PendencyGroup, dir *CollaboratorDirectory) entity.DispatchOutcome {
	outcome := entity.DispatchOutcome{
		Colaborador: name,
		Atrasados:   len(group.Atrasados),
		Perto:       len(group.PertoVencimento),
	}

	email, ok := dir.Resolve(name)
	if !ok {
		log.Printf("⏭️ [ALERTAS] Colaborador %q sem email no diretório, ignorando", name)
		outcome.Status = entity.DispatchSkipped
		return outcome
	}
	outcome.Email = email

	if err := ctx.Err(); err != nil {
		outcome.Status = entity.DispatchFailed
		outcome.Error = err.Error()
		return outcome
	}

	digest, err := BuildDigest(name, group, email)
	if err != nil {
		log.Printf("❌ [ALERTAS] Erro ao montar alerta para %s: %v", email, err)
		outcome.Status = entity.DispatchFailed
		outcome.Error = err.Error()
		return outcome
	}

	if err := uc.Sender.SendDigest(ctx, digest); err != nil {
		log.Printf("❌ [ALERTAS] Falha ao enviar alerta para %s: %v", email, err)
		outcome.Status = entity.DispatchFailed
		outcome.Error = err.Error()
		return outcome
	}

	log.Printf("📧 [ALERTAS] Email de alerta enviado com sucesso para %s", email)
	outcome.Status = entity.DispatchSent
	return outcome
}

func (uc *SendAlertsUseCase) finish(ctx context.Context, report *entity.RunReport, success bool, msg string) {
	report.Success = success
	report.Message = msg
	report.FinishedAt = uc.Now()

	if uc.Publisher == nil {
		return
	}
	// o relatório é informativo; a fila fora do ar não muda o resultado
	if err := uc.Publisher.PublishRunReport(context.WithoutCancel(ctx), *report); err != nil {
		log.Printf("⚠️ [ALERTAS] Relatório %s não publicado: %v", report.RunID, err)
	}
}
