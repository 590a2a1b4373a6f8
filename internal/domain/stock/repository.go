package stock

import (
	"context"
)

// Repository define a interface para o diário de movimentos de estoque.
// Apenas inserção e consulta: movimentos nunca são alterados ou removidos.
type Repository interface {
	// Record registra um movimento de estoque
	Record(ctx context.Context, m *Movement) error

	// ListByProduct lista os movimentos de um produto, mais recentes primeiro
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*Movement, error)

	// List lista os movimentos de todos os produtos, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Movement, error)
}
