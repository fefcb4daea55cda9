package usecase

import (
	"time"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

// DueSoonWindowDays é a janela (inclusiva) de "perto do vencimento".
const DueSoonWindowDays = 7

// Today devolve a meia-noite de hoje no fuso loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return entity.StartOfDay(now, loc)
}

// Classify rotula um pedido em relação a today (já truncado para meia-noite;
// o fuso de today é usado para interpretar o vencimento).
func Classify(o entity.Order, today time.Time) entity.Classification {
	if o.Delivered() {
		return entity.ClassNotPending
	}

	due, err := o.DueDate(today.Location())
	if err != nil {
		return entity.ClassNotPending
	}

	limit := today.AddDate(0, 0, DueSoonWindowDays)
	switch {
	case due.Before(today):
		return entity.ClassOverdue
	case !due.After(limit):
		return entity.ClassDueSoon
	default:
		return entity.ClassNotPending
	}
}
