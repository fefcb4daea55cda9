package usecase

import "github.com/xavierca1/alertas-pedidos/internal/entity"

// CollaboratorDirectory é o diretório de colaboradores já achatado, na ordem dos
// documentos lidos.
type CollaboratorDirectory struct {
	entries []entity.Collaborator
}

func NewCollaboratorDirectory(units []entity.CollaboratorUnit) *CollaboratorDirectory {
	dir := &CollaboratorDirectory{}
	for _, u := range units {
		dir.entries = append(dir.entries, u.Items...)
	}
	return dir
}

func (d *CollaboratorDirectory) Len() int {
	return len(d.entries)
}

// Resolve procura o nome exato (sensível a maiúsculas, sem trim). Vale a primeira
// ocorrência: se ela não tiver email o colaborador não é notificável, mesmo que
// uma duplicata posterior tenha.
func (d *CollaboratorDirectory) Resolve(name string) (string, bool) {
	for _, c := range d.entries {
		if c.Nome != name {
			continue
		}
		if c.Email == "" {
			return "", false
		}
		return c.Email, true
	}
	return "", false
}
