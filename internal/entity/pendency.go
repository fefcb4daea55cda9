package entity

type Classification string

const (
	ClassOverdue    Classification = "overdue"
	ClassDueSoon    Classification = "due-soon"
	ClassNotPending Classification = "not-pending"
)

// PendencyGroup guarda os pedidos pendentes de um único colaborador,
// na ordem em que apareceram na leitura.
type PendencyGroup struct {
	Colaborador     string
	Atrasados       []Order
	PertoVencimento []Order
}

func (g *PendencyGroup) Empty() bool {
	return g == nil || (len(g.Atrasados) == 0 && len(g.PertoVencimento) == 0)
}

// Digest é o email pronto para um colaborador.
type Digest struct {
	Colaborador string
	To          string
	Subject     string
	HTMLBody    string
}
