package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome do produto não pode ser vazio")
	ErrEmptyBarcode    = errors.New("código de barras não pode ser vazio")
	ErrNegativePrice   = errors.New("preço de venda não pode ser negativo")
	ErrNegativeCost    = errors.New("preço de custo não pode ser negativo")
	ErrNegativeStock   = errors.New("quantidade em estoque não pode ser negativa")
	ErrInvalidMinStock = errors.New("estoque mínimo não pode ser negativo")
)

// Product representa um produto do catálogo
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`                // Descrição do produto
	Barcode         string          `json:"barcode"`             // Código de barras (EAN), único
	Price           decimal.Decimal `json:"price"`               // Preço de venda unitário
	CostPrice       decimal.Decimal `json:"cost_price"`          // Preço de custo unitário
	Stock           int             `json:"stock"`               // Quantidade atual em estoque
	MinStock        int             `json:"min_stock"`           // Estoque mínimo para alerta
	CategoryID      string          `json:"category_id"`         // Referência à categoria
	Description     string          `json:"description"`         // Descrição complementar
	Active          bool            `json:"active"`              // Produto ativo para venda
	ExpiryDate      *time.Time      `json:"expiry_date"`         // Data de validade
	ManufactureDate *time.Time      `json:"manufacture_date"`    // Data de fabricação
	EntryDate       time.Time       `json:"entry_date"`          // Data de entrada no estoque
	InvoiceNumber   string          `json:"invoice_number"`      // Número da nota fiscal de entrada
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name, barcode string, price decimal.Decimal, stock, minStock int, categoryID string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if barcode == "" {
		return nil, ErrEmptyBarcode
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if minStock < 0 {
		return nil, ErrInvalidMinStock
	}

	now := time.Now()
	return &Product{
		ID:         uuid.New().String(),
		Name:       name,
		Barcode:    barcode,
		Price:      price,
		CostPrice:  decimal.Zero,
		Stock:      stock,
		MinStock:   minStock,
		CategoryID: categoryID,
		Active:     true,
		EntryDate:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, barcode string, price, costPrice decimal.Decimal, minStock int, categoryID, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	if barcode == "" {
		return ErrEmptyBarcode
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if costPrice.IsNegative() {
		return ErrNegativeCost
	}
	if minStock < 0 {
		return ErrInvalidMinStock
	}

	p.Name = name
	p.Barcode = barcode
	p.Price = price
	p.CostPrice = costPrice
	p.MinStock = minStock
	p.CategoryID = categoryID
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// IsLowStock verifica se o produto está abaixo do estoque mínimo
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// HasStock verifica se há estoque suficiente para a quantidade pedida
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// Activate marca o produto como ativo para venda
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}

// Deactivate marca o produto como inativo
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}
