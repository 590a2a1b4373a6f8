package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
)

// CashFlowEntryRequest representa a requisição de lançamento no fluxo de caixa
type CashFlowEntryRequest struct {
	Type             string          `json:"type" binding:"required,oneof=entrada saida"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	Category         string          `json:"category"`
	Account          string          `json:"account"`
	Date             time.Time       `json:"date"`
	DueDate          *time.Time      `json:"due_date"`
	Status           string          `json:"status" binding:"omitempty,oneof=pago pendente agendado"`
	Recurring        bool            `json:"recurring"`
	RecurrencePeriod string          `json:"recurrence_period"`
	Notes            string          `json:"notes"`
}

// CashFlowEntryResponse representa a resposta de lançamento
type CashFlowEntryResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Account          string          `json:"account"`
	Date             time.Time       `json:"date"`
	DueDate          *time.Time      `json:"due_date"`
	Status           string          `json:"status"`
	Recurring        bool            `json:"recurring"`
	RecurrencePeriod string          `json:"recurrence_period"`
	UserID           string          `json:"user_id"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CashFlowListResponse representa a resposta de lista de lançamentos
type CashFlowListResponse struct {
	Items []CashFlowEntryResponse `json:"items"`
	Page  int                     `json:"page"`
	Size  int                     `json:"size"`
}

// BalanceResponse representa o saldo do fluxo de caixa
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToCashFlowEntryResponse converte um lançamento do domínio para DTO
func ToCashFlowEntryResponse(e *cashflow.Entry) *CashFlowEntryResponse {
	return &CashFlowEntryResponse{
		ID:               e.ID,
		Type:             string(e.Type),
		Amount:           e.Amount,
		Description:      e.Description,
		Category:         e.Category,
		Account:          e.Account,
		Date:             e.Date,
		DueDate:          e.DueDate,
		Status:           string(e.Status),
		Recurring:        e.Recurring,
		RecurrencePeriod: e.RecurrencePeriod,
		UserID:           e.UserID,
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
	}
}

// ToCashFlowListResponse converte uma lista de lançamentos para DTO
func ToCashFlowListResponse(entries []*cashflow.Entry, page, size int) CashFlowListResponse {
	items := make([]CashFlowEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = *ToCashFlowEntryResponse(e)
	}
	return CashFlowListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	}
}
