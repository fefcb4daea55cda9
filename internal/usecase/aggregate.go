package usecase

import (
	"time"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

// PendencyIndex agrupa pendências por nome de colaborador mantendo a ordem
// em que cada colaborador apareceu pela primeira vez.
type PendencyIndex struct {
	names  []string
	groups map[string]*entity.PendencyGroup
}

func (idx *PendencyIndex) Names() []string {
	return idx.names
}

func (idx *PendencyIndex) Group(name string) (*entity.PendencyGroup, bool) {
	g, ok := idx.groups[name]
	return g, ok
}

func (idx *PendencyIndex) Len() int {
	return len(idx.names)
}

func (idx *PendencyIndex) add(o entity.Order, class entity.Classification) {
	g, ok := idx.groups[o.NomeColaborador]
	if !ok {
		g = &entity.PendencyGroup{Colaborador: o.NomeColaborador}
		idx.groups[o.NomeColaborador] = g
		idx.names = append(idx.names, o.NomeColaborador)
	}

	switch class {
	case entity.ClassOverdue:
		g.Atrasados = append(g.Atrasados, o)
	case entity.ClassDueSoon:
		g.PertoVencimento = append(g.PertoVencimento, o)
	}
}

// Aggregate classifica cada pedido e agrupa os pendentes pelo colaborador do pedido.
// Pedidos sem pendência não criam grupo.
func Aggregate(orders []entity.Order, today time.Time) *PendencyIndex {
	idx := &PendencyIndex{groups: make(map[string]*entity.PendencyGroup)}

	for _, o := range orders {
		class := Classify(o, today)
		if class == entity.ClassNotPending {
			continue
		}
		idx.add(o, class)
	}

	return idx
}
