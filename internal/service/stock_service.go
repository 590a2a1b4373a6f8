package service

import (
	"context"
	"fmt"

	"github.com/lucasferr/pdv-varejo/internal/domain/product"
	"github.com/lucasferr/pdv-varejo/internal/domain/stock"
)

// StockService coordena ajustes manuais de estoque: aplica o delta no
// produto e registra o movimento correspondente no diário.
type StockService struct {
	products  product.Repository
	movements stock.Repository
}

// NewStockService cria uma nova instância de StockService
func NewStockService(products product.Repository, movements stock.Repository) *StockService {
	return &StockService{
		products:  products,
		movements: movements,
	}
}

// Adjust aplica um ajuste manual de estoque. O resultado nunca fica
// negativo: um delta que ultrapasse o estoque atual é travado em zero e o
// movimento registra a quantidade efetivamente aplicada.
func (s *StockService) Adjust(ctx context.Context, productID string, delta int, reason, userID string) (*stock.Movement, error) {
	if reason == "" {
		return nil, stock.ErrEmptyReason
	}
	if delta == 0 {
		return nil, stock.ErrInvalidQuantity
	}

	previous, current, err := s.products.AdjustStock(ctx, productID, delta)
	if err != nil {
		return nil, err
	}

	applied := current - previous
	if applied < 0 {
		applied = -applied
	}
	if applied == 0 {
		// Delta negativo sobre estoque zerado: nada mudou, nada a registrar
		return nil, stock.ErrInvalidQuantity
	}

	movType := stock.MovementEntry
	if delta < 0 {
		movType = stock.MovementExit
	}

	movement, err := stock.NewMovement(productID, movType, applied, previous, current, reason, userID)
	if err != nil {
		return nil, err
	}

	if err := s.movements.Record(ctx, movement); err != nil {
		return nil, fmt.Errorf("erro ao registrar movimento: %w", err)
	}

	return movement, nil
}

// History lista os movimentos de estoque de um produto
func (s *StockService) History(ctx context.Context, productID string, limit, offset int) ([]*stock.Movement, error) {
	return s.movements.ListByProduct(ctx, productID, limit, offset)
}

// List lista os movimentos de estoque de todos os produtos
func (s *StockService) List(ctx context.Context, limit, offset int) ([]*stock.Movement, error) {
	return s.movements.List(ctx, limit, offset)
}
