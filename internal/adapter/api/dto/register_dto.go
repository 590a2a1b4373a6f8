package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasferr/pdv-varejo/internal/domain/register"
)

// RegisterOpenRequest representa a requisição de abertura de caixa
type RegisterOpenRequest struct {
	TerminalID   string          `json:"terminal_id" binding:"required"`
	OpeningCash  decimal.Decimal `json:"opening_cash"`
	OpeningCards decimal.Decimal `json:"opening_cards"`
	OpeningOther decimal.Decimal `json:"opening_other"`
}

// RegisterCloseRequest representa a requisição de fechamento de caixa
type RegisterCloseRequest struct {
	TerminalID   string          `json:"terminal_id" binding:"required"`
	ClosingCash  decimal.Decimal `json:"closing_cash"`
	ClosingCards decimal.Decimal `json:"closing_cards"`
	ClosingOther decimal.Decimal `json:"closing_other"`
	Notes        string          `json:"notes"`
}

// RegisterSessionResponse representa a resposta de sessão de caixa
type RegisterSessionResponse struct {
	ID                string           `json:"id"`
	TerminalID        string           `json:"terminal_id"`
	OperatorID        string           `json:"operator_id"`
	State             string           `json:"state"`
	OpenedAt          time.Time        `json:"opened_at"`
	OpeningCash       decimal.Decimal  `json:"opening_cash"`
	OpeningCards      decimal.Decimal  `json:"opening_cards"`
	OpeningOther      decimal.Decimal  `json:"opening_other"`
	ClosedAt          *time.Time       `json:"closed_at"`
	ClosingCash       *decimal.Decimal `json:"closing_cash"`
	ClosingCards      *decimal.Decimal `json:"closing_cards"`
	ClosingOther      *decimal.Decimal `json:"closing_other"`
	Notes             string           `json:"notes"`
	LastReceiptNumber int              `json:"last_receipt_number"`
}

// RegisterStatusResponse representa o estado atual do caixa de um terminal
type RegisterStatusResponse struct {
	Open    bool                     `json:"open"`
	Session *RegisterSessionResponse `json:"session,omitempty"`
}

// ToRegisterSessionResponse converte uma sessão do domínio para DTO
func ToRegisterSessionResponse(s *register.Session) *RegisterSessionResponse {
	return &RegisterSessionResponse{
		ID:                s.ID,
		TerminalID:        s.TerminalID,
		OperatorID:        s.OperatorID,
		State:             string(s.State),
		OpenedAt:          s.OpenedAt,
		OpeningCash:       s.OpeningCash,
		OpeningCards:      s.OpeningCards,
		OpeningOther:      s.OpeningOther,
		ClosedAt:          s.ClosedAt,
		ClosingCash:       s.ClosingCash,
		ClosingCards:      s.ClosingCards,
		ClosingOther:      s.ClosingOther,
		Notes:             s.Notes,
		LastReceiptNumber: s.LastReceiptNumber,
	}
}

// ToRegisterSessionListResponse converte uma lista de sessões para DTO
func ToRegisterSessionListResponse(sessions []*register.Session) []RegisterSessionResponse {
	items := make([]RegisterSessionResponse, len(sessions))
	for i, s := range sessions {
		items[i] = *ToRegisterSessionResponse(s)
	}
	return items
}
