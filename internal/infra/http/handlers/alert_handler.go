package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/alertas-pedidos/internal/usecase"
)

type AlertHandler struct {
	Runner usecase.AlertRunner
}

func NewAlertHandler(runner usecase.AlertRunner) *AlertHandler {
	return &AlertHandler{Runner: runner}
}

// Handle dispara uma varredura. Responde 200 quando todos os colaboradores
// alcançáveis foram processados sem falha e 500 caso contrário. Com
// ?detalhes=1 o corpo é o relatório em JSON.
func (h *AlertHandler) Handle(w http.ResponseWriter, r *http.Request) {
	log.Println("Função 'enviar-alertas' acionada. Iniciando verificação...")

	report, err := h.Runner.Execute(r.Context())
	if err != nil {
		log.Printf("❌ Erro ao executar a função de envio de alertas: %v", err)
		http.Error(w, usecase.MsgRunFailure, http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !report.Success {
		status = http.StatusInternalServerError
	}

	if r.URL.Query().Get("detalhes") == "1" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(report)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(report.Message))
}
