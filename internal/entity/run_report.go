package entity

import "time"

type DispatchStatus string

const (
	DispatchSent    DispatchStatus = "sent"
	DispatchSkipped DispatchStatus = "skipped"
	DispatchFailed  DispatchStatus = "failed"
)

type DispatchOutcome struct {
	Colaborador string         `json:"colaborador"`
	Email       string         `json:"email,omitempty"`
	Status      DispatchStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	Atrasados   int            `json:"atrasados"`
	Perto       int            `json:"perto_vencimento"`
}

// RunReport é o resultado de uma execução. Success e Message são o contrato
// público; Outcomes detalha cada colaborador.
type RunReport struct {
	RunID      string            `json:"run_id"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Outcomes   []DispatchOutcome `json:"outcomes"`
}

func (r *RunReport) Count(status DispatchStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
