package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lucasferr/pdv-varejo/internal/domain/product"
	"github.com/lucasferr/pdv-varejo/internal/domain/stock"
	"github.com/shopspring/decimal"
)

type memMovements struct {
	recorded []*stock.Movement
}

func (m *memMovements) Record(_ context.Context, mv *stock.Movement) error {
	m.recorded = append(m.recorded, mv)
	return nil
}

func (m *memMovements) ListByProduct(_ context.Context, productID string, _, _ int) ([]*stock.Movement, error) {
	out := make([]*stock.Movement, 0)
	for _, mv := range m.recorded {
		if mv.ProductID == productID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *memMovements) List(context.Context, int, int) ([]*stock.Movement, error) {
	return m.recorded, nil
}

func newStockFixture(t *testing.T, stockQty int) (*StockService, *product.Product, *memMovements) {
	t.Helper()

	products := &memProducts{items: make(map[string]*product.Product)}
	movements := &memMovements{}

	p, err := product.NewProduct("Arroz 5kg", "7891234567890", decimal.RequireFromString("8.50"), stockQty, 2, "")
	if err != nil {
		t.Fatalf("criando produto: %v", err)
	}
	products.items[p.ID] = p

	return NewStockService(products, movements), p, movements
}

func TestAdjustEntradaRegistraMovimento(t *testing.T) {
	svc, p, movements := newStockFixture(t, 10)

	mv, err := svc.Adjust(context.Background(), p.ID, 5, "Reposição de mercadoria", "user-1")
	if err != nil {
		t.Fatalf("esperava ajuste aplicado, veio erro: %v", err)
	}

	if p.Stock != 15 {
		t.Errorf("estoque = %d, esperado 15", p.Stock)
	}
	if mv.Type != stock.MovementEntry {
		t.Errorf("tipo do movimento = %q, esperado entrada", mv.Type)
	}
	if mv.Quantity != 5 || mv.PreviousStock != 10 || mv.NewStock != 15 {
		t.Errorf("movimento registrou qty=%d %d -> %d, esperado 5, 10 -> 15",
			mv.Quantity, mv.PreviousStock, mv.NewStock)
	}
	if len(movements.recorded) != 1 {
		t.Errorf("movimentos registrados = %d, esperado 1", len(movements.recorded))
	}
}

func TestAdjustSaidaTravaEmZero(t *testing.T) {
	svc, p, _ := newStockFixture(t, 3)

	mv, err := svc.Adjust(context.Background(), p.ID, -10, "Perda por validade", "user-1")
	if err != nil {
		t.Fatalf("esperava ajuste aplicado, veio erro: %v", err)
	}

	if p.Stock != 0 {
		t.Errorf("estoque = %d, esperado 0 (nunca negativo)", p.Stock)
	}
	if mv.Type != stock.MovementExit {
		t.Errorf("tipo do movimento = %q, esperado saida", mv.Type)
	}
	if mv.Quantity != 3 {
		t.Errorf("quantidade do movimento = %d, esperado 3 (efetivamente aplicada)", mv.Quantity)
	}
	if mv.PreviousStock != 3 || mv.NewStock != 0 {
		t.Errorf("movimento registrou %d -> %d, esperado 3 -> 0", mv.PreviousStock, mv.NewStock)
	}
}

func TestAdjustSobreEstoqueZeradoNadaRegistra(t *testing.T) {
	svc, p, movements := newStockFixture(t, 0)

	_, err := svc.Adjust(context.Background(), p.ID, -5, "Perda", "user-1")
	if !errors.Is(err, stock.ErrInvalidQuantity) {
		t.Fatalf("esperava ErrInvalidQuantity, veio: %v", err)
	}
	if p.Stock != 0 {
		t.Errorf("estoque = %d, esperado 0", p.Stock)
	}
	if len(movements.recorded) != 0 {
		t.Error("ajuste sem efeito registrou movimento")
	}
}

func TestAdjustExigeMotivo(t *testing.T) {
	svc, p, movements := newStockFixture(t, 10)

	_, err := svc.Adjust(context.Background(), p.ID, 5, "", "user-1")
	if !errors.Is(err, stock.ErrEmptyReason) {
		t.Fatalf("esperava ErrEmptyReason, veio: %v", err)
	}
	if p.Stock != 10 {
		t.Errorf("estoque alterado para %d sem motivo informado", p.Stock)
	}
	if len(movements.recorded) != 0 {
		t.Error("movimento registrado sem motivo")
	}
}
