package dto

import (
	"time"

	"github.com/lucasferr/pdv-varejo/internal/domain/stock"
)

// StockMovementResponse representa a resposta de movimento de estoque
type StockMovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reason        string    `json:"reason"`
	UserID        string    `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToStockMovementResponse converte um movimento do domínio para DTO
func ToStockMovementResponse(m *stock.Movement) *StockMovementResponse {
	return &StockMovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reason:        m.Reason,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToStockMovementListResponse converte uma lista de movimentos para DTO
func ToStockMovementListResponse(movements []*stock.Movement) []StockMovementResponse {
	items := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		items[i] = *ToStockMovementResponse(m)
	}
	return items
}
