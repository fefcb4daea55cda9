package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

const DigestSubject = "Alerta de Pendências de Pedidos"

const digestTemplate = `<h1>Olá, {{.Nome}}!</h1><p>Você tem as seguintes pendências de pedidos no sistema:</p>
{{- if .Atrasados}}<h2>🚨 Pedidos Atrasados:</h2><ul>
{{- range .Atrasados}}<li>Pedido <strong>{{.NumeroPedido}}</strong> ({{.Fornecedor}})</li>{{end -}}
</ul>{{end}}
{{- if .Perto}}<h2>⚠️ Pedidos Perto do Vencimento:</h2><ul>
{{- range .Perto}}<li>Pedido <strong>{{.NumeroPedido}}</strong> ({{.Fornecedor}})</li>{{end -}}
</ul>{{end -}}
<p>Por favor, verifique o sistema para mais detalhes.</p>`

var digestTmpl = template.Must(template.New("digest").Parse(digestTemplate))

type digestData struct {
	Nome      string
	Atrasados []entity.Order
	Perto     []entity.Order
}

// BuildDigest monta o corpo HTML do alerta de um colaborador.
func BuildDigest(name string, group *entity.PendencyGroup, to string) (entity.Digest, error) {
	if group.Empty() {
		return entity.Digest{}, &DomainError{
			Code:    "EMPTY_PENDENCY_GROUP",
			Message: fmt.Sprintf("colaborador %q sem pendências", name),
		}
	}

	var body bytes.Buffer
	err := digestTmpl.Execute(&body, digestData{
		Nome:      name,
		Atrasados: group.Atrasados,
		Perto:     group.PertoVencimento,
	})
	if err != nil {
		return entity.Digest{}, fmt.Errorf("erro ao processar template: %w", err)
	}

	return entity.Digest{
		Colaborador: name,
		To:          to,
		Subject:     DigestSubject,
		HTMLBody:    body.String(),
	}, nil
}
