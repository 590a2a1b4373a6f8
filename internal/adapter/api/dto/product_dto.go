package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasferr/pdv-varejo/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	Barcode         string          `json:"barcode" binding:"required"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	Stock           int             `json:"stock"`
	MinStock        int             `json:"min_stock"`
	CategoryID      string          `json:"category_id"`
	Description     string          `json:"description"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	ManufactureDate *time.Time      `json:"manufacture_date"`
	InvoiceNumber   string          `json:"invoice_number"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Barcode         string          `json:"barcode"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	Stock           int             `json:"stock"`
	MinStock        int             `json:"min_stock"`
	LowStock        bool            `json:"low_stock"`
	CategoryID      string          `json:"category_id"`
	Description     string          `json:"description"`
	Active          bool            `json:"active"`
	ExpiryDate      *time.Time      `json:"expiry_date"`
	ManufactureDate *time.Time      `json:"manufacture_date"`
	EntryDate       time.Time       `json:"entry_date"`
	InvoiceNumber   string          `json:"invoice_number"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

// StockAdjustmentRequest representa a requisição de ajuste manual de estoque
type StockAdjustmentRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Barcode:         p.Barcode,
		Price:           p.Price,
		CostPrice:       p.CostPrice,
		Stock:           p.Stock,
		MinStock:        p.MinStock,
		LowStock:        p.IsLowStock(),
		CategoryID:      p.CategoryID,
		Description:     p.Description,
		Active:          p.Active,
		ExpiryDate:      p.ExpiryDate,
		ManufactureDate: p.ManufactureDate,
		EntryDate:       p.EntryDate,
		InvoiceNumber:   p.InvoiceNumber,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para DTO
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = *ToProductResponse(p)
	}
	return ProductListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}
