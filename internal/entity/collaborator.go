package entity

import "context"

type Collaborator struct {
	Nome  string `json:"nome" bson:"nome"`
	Email string `json:"email" bson:"email"`
}

// CollaboratorUnit é um documento da coleção "colaboradores": um setor com a lista
// de colaboradores em Items.
type CollaboratorUnit struct {
	ID    string         `json:"id" bson:"_id,omitempty"`
	Nome  string         `json:"nome" bson:"nome"`
	Items []Collaborator `json:"items" bson:"items"`
}

type CollaboratorRepository interface {
	FindAllUnits(ctx context.Context) ([]CollaboratorUnit, error)
}
