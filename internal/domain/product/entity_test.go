package product

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProductValidaCampos(t *testing.T) {
	price := decimal.RequireFromString("8.50")

	p, err := NewProduct("Arroz 5kg", "7891234567890", price, 10, 3, "cat-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !p.Active {
		t.Error("produto novo deveria estar ativo")
	}
	if p.ID == "" {
		t.Error("produto criado sem ID")
	}

	if _, err := NewProduct("", "789", price, 0, 0, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("nome vazio: err = %v, esperado ErrEmptyName", err)
	}
	if _, err := NewProduct("Arroz", "", price, 0, 0, ""); !errors.Is(err, ErrEmptyBarcode) {
		t.Errorf("código de barras vazio: err = %v, esperado ErrEmptyBarcode", err)
	}
	if _, err := NewProduct("Arroz", "789", decimal.RequireFromString("-1.00"), 0, 0, ""); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("preço negativo: err = %v, esperado ErrNegativePrice", err)
	}
	if _, err := NewProduct("Arroz", "789", price, -1, 0, ""); !errors.Is(err, ErrNegativeStock) {
		t.Errorf("estoque negativo: err = %v, esperado ErrNegativeStock", err)
	}
}

func TestHasStockEIsLowStock(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "789", decimal.RequireFromString("8.50"), 5, 3, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !p.HasStock(5) {
		t.Error("HasStock(5) com estoque 5 deveria ser true")
	}
	if p.HasStock(6) {
		t.Error("HasStock(6) com estoque 5 deveria ser false")
	}
	if p.IsLowStock() {
		t.Error("estoque 5 com mínimo 3 não é estoque baixo")
	}

	p.Stock = 3
	if !p.IsLowStock() {
		t.Error("estoque igual ao mínimo conta como estoque baixo")
	}
}

func TestUpdateRejeitaCustoNegativo(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "789", decimal.RequireFromString("8.50"), 5, 3, "")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	err = p.Update("Arroz 5kg", "789", p.Price, decimal.RequireFromString("-2.00"), 3, "", "")
	if !errors.Is(err, ErrNegativeCost) {
		t.Errorf("err = %v, esperado ErrNegativeCost", err)
	}
}
