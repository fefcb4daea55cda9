package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

type CollaboratorRepository struct {
	DB *sql.DB
}

func NewCollaboratorRepository(db *sql.DB) *CollaboratorRepository {
	return &CollaboratorRepository{DB: db}
}

// FindAllUnits lê o diretório: uma linha por setor, colaboradores em items (JSONB).
func (r *CollaboratorRepository) FindAllUnits(ctx context.Context) ([]entity.CollaboratorUnit, error) {
	query := `
		SELECT id, COALESCE(nome, ''), COALESCE(items, '[]'::jsonb)
		FROM colaboradores
		ORDER BY created_at, id
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar colaboradores: %w", err)
	}
	defer rows.Close()

	units := []entity.CollaboratorUnit{}
	for rows.Next() {
		var u entity.CollaboratorUnit
		var items []byte

		if err := rows.Scan(&u.ID, &u.Nome, &items); err != nil {
			return nil, fmt.Errorf("erro ao escanear setor: %w", err)
		}
		if err := decodeItems(items, &u); err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

func decodeItems(raw []byte, u *entity.CollaboratorUnit) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &u.Items); err != nil {
		return fmt.Errorf("items inválidos no setor %s: %w", u.ID, err)
	}
	return nil
}
