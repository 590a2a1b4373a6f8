package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferr/pdv-varejo/internal/domain/stock"
)

// StockRepository implementa a interface stock.Repository usando PostgreSQL
type StockRepository struct {
	db *pgxpool.Pool
}

// NewStockRepository cria uma nova instância de StockRepository
func NewStockRepository(db *pgxpool.Pool) stock.Repository {
	return &StockRepository{
		db: db,
	}
}

// Record implementa stock.Repository.Record
func (r *StockRepository) Record(ctx context.Context, m *stock.Movement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_movements (
			id, product_id, type, quantity, previous_stock, new_stock,
			reason, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ProductID, string(m.Type), m.Quantity, m.PreviousStock,
		m.NewStock, m.Reason, m.UserID, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar movimento de estoque: %w", err)
	}

	return nil
}

// ListByProduct implementa stock.Repository.ListByProduct
func (r *StockRepository) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*stock.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, type, quantity, previous_stock, new_stock,
			reason, user_id, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos do produto: %w", err)
	}
	defer rows.Close()

	return scanMovementRows(rows)
}

// List implementa stock.Repository.List
func (r *StockRepository) List(ctx context.Context, limit, offset int) ([]*stock.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, type, quantity, previous_stock, new_stock,
			reason, user_id, created_at
		FROM stock_movements
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar movimentos de estoque: %w", err)
	}
	defer rows.Close()

	return scanMovementRows(rows)
}

// scanMovementRows é um método auxiliar para processar resultados de
// consultas que retornam múltiplos movimentos
func scanMovementRows(rows pgx.Rows) ([]*stock.Movement, error) {
	movements := make([]*stock.Movement, 0)

	for rows.Next() {
		var m stock.Movement
		var movType string

		err := rows.Scan(&m.ID, &m.ProductID, &movType, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Reason, &m.UserID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler movimento: %w", err)
		}

		m.Type = stock.MovementType(movType)
		movements = append(movements, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return movements, nil
}
