package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasferr/pdv-varejo/internal/domain/sale"
)

// SaleItemRequest representa uma linha do carrinho na finalização
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// SaleRequest representa a requisição de finalização de venda
type SaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	TerminalID    string            `json:"terminal_id" binding:"required"`
}

// SaleItemResponse representa uma linha da venda
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	Number        int                `json:"number"`
	SessionID     string             `json:"session_id"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	OperatorID    string             `json:"operator_id"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleFinalizeResponse representa a resposta da finalização: a venda mais o
// cupom já formatado para impressão
type SaleFinalizeResponse struct {
	Sale    SaleResponse `json:"sale"`
	Receipt string       `json:"receipt"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// ToCartItems converte as linhas da requisição para o domínio
func ToCartItems(items []SaleItemRequest) []sale.CartItem {
	cart := make([]sale.CartItem, len(items))
	for i, item := range items {
		cart[i] = sale.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return cart
}

// ToSaleResponse converte uma venda do domínio para DTO
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
	return &SaleResponse{
		ID:            s.ID,
		Number:        s.Number,
		SessionID:     s.SessionID,
		Items:         items,
		Total:         s.Total,
		OperatorID:    s.OperatorID,
		PaymentMethod: string(s.PaymentMethod),
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas para DTO
func ToSaleListResponse(sales []*sale.Sale, page, size int) SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = *ToSaleResponse(s)
	}
	return SaleListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	}
}
