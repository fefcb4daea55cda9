package entity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// StatusEntregue é o único status de NF que encerra a pendência do pedido.
const StatusEntregue = "Entregue"

const dueDateLayout = "2006-01-02"

var (
	ErrDueDateMissing = errors.New("data de vencimento ausente")
	ErrDueDateInvalid = errors.New("data de vencimento inválida")
)

// Entidade: Order (documento da coleção "pedidos")
type Order struct {
	NumeroPedido    string `json:"numeroPedido" bson:"numeroPedido"`
	Fornecedor      string `json:"fornecedor" bson:"fornecedor"`
	StatusNFFiscal  string `json:"statusNFFiscal" bson:"statusNFFiscal"`
	DataVencimento  string `json:"dataVencimento" bson:"dataVencimento"` // data de calendário, ex: 2024-05-31
	NomeColaborador string `json:"nomeColaborador" bson:"nomeColaborador"`
}

func (o Order) Delivered() bool {
	return o.StatusNFFiscal == StatusEntregue
}

// DueDate devolve o vencimento como meia-noite em loc.
func (o Order) DueDate(loc *time.Location) (time.Time, error) {
	return ParseDueDate(o.DataVencimento, loc)
}

// ParseDueDate aceita "YYYY-MM-DD" ou RFC3339. Em RFC3339 só o dia do calendário
// (no fuso loc) é considerado.
func ParseDueDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrDueDateMissing
	}

	if t, err := time.ParseInLocation(dueDateLayout, raw, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrDueDateInvalid
	}
	return StartOfDay(t, loc), nil
}

// StartOfDay trunca t para a meia-noite do mesmo dia de calendário em loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

type OrderRepository interface {
	FindAll(ctx context.Context) ([]Order, error)
}
