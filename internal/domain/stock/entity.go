package stock

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantidade do movimento deve ser maior que zero")
	ErrEmptyReason     = errors.New("motivo do movimento não pode ser vazio")
)

// MovementType representa a direção de um movimento de estoque
type MovementType string

const (
	MovementEntry      MovementType = "entrada"
	MovementExit       MovementType = "saida"
	MovementAdjustment MovementType = "ajuste"
)

// Movement registra uma alteração de quantidade em estoque. Os movimentos
// formam um diário imutável: nunca são editados nem removidos.
type Movement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"product_id"`
	Type          MovementType `json:"type"`
	Quantity      int          `json:"quantity"`       // Sempre positivo; a direção está em Type
	PreviousStock int          `json:"previous_stock"` // Estoque antes do movimento
	NewStock      int          `json:"new_stock"`      // Estoque após o movimento
	Reason        string       `json:"reason"`
	UserID        string       `json:"user_id"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewMovement cria um novo movimento de estoque
func NewMovement(productID string, movType MovementType, quantity, previousStock, newStock int, reason, userID string) (*Movement, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return &Movement{
		ID:            uuid.New().String(),
		ProductID:     productID,
		Type:          movType,
		Quantity:      quantity,
		PreviousStock: previousStock,
		NewStock:      newStock,
		Reason:        reason,
		UserID:        userID,
		CreatedAt:     time.Now(),
	}, nil
}
