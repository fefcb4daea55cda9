package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/alertas-pedidos/internal/entity"
)

type OrderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// FindAll lê todos os pedidos. data_vencimento é DATE e pode ser NULL.
func (r *OrderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	query := `
		SELECT
			numero_pedido,
			COALESCE(fornecedor, ''),
			COALESCE(status_nf_fiscal, ''),
			data_vencimento,
			COALESCE(nome_colaborador, '')
		FROM pedidos
		ORDER BY created_at, numero_pedido
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		var due sql.NullTime

		if err := rows.Scan(&o.NumeroPedido, &o.Fornecedor, &o.StatusNFFiscal, &due, &o.NomeColaborador); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		if due.Valid {
			o.DataVencimento = due.Time.Format("2006-01-02")
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
