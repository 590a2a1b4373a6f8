package cashflow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("valor do lançamento deve ser maior que zero")
	ErrEmptyDescription = errors.New("descrição do lançamento não pode ser vazia")
)

// EntryType representa a direção de um lançamento no fluxo de caixa
type EntryType string

const (
	TypeIncome  EntryType = "entrada"
	TypeExpense EntryType = "saida"
)

// EntryStatus representa a situação de um lançamento
type EntryStatus string

const (
	StatusPaid      EntryStatus = "pago"
	StatusPending   EntryStatus = "pendente"
	StatusScheduled EntryStatus = "agendado"
)

// Entry é um lançamento do fluxo de caixa. Lançamentos formam um livro
// imutável: o saldo é sempre derivado por consulta, nunca armazenado.
type Entry struct {
	ID               string          `json:"id"`
	Type             EntryType       `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Account          string          `json:"account"`
	Date             time.Time       `json:"date"`
	DueDate          *time.Time      `json:"due_date"`
	Status           EntryStatus     `json:"status"`
	Recurring        bool            `json:"recurring"`
	RecurrencePeriod string          `json:"recurrence_period"`
	UserID           string          `json:"user_id"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
}

// NewEntry cria um novo lançamento de fluxo de caixa
func NewEntry(entryType EntryType, amount decimal.Decimal, description, category, account string, date time.Time, status EntryStatus, userID string) (*Entry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Entry{
		ID:          uuid.New().String(),
		Type:        entryType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Account:     account,
		Date:        date,
		Status:      status,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}, nil
}

// Filter restringe consultas ao fluxo de caixa
type Filter struct {
	From     *time.Time
	To       *time.Time
	Type     EntryType
	Category string
	Account  string
}

// Matches verifica se um lançamento é aceito pelo filtro
func (f Filter) Matches(e *Entry) bool {
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Account != "" && e.Account != f.Account {
		return false
	}
	return true
}

// Balance calcula o saldo de um conjunto de lançamentos: soma das entradas
// menos a soma das saídas. Valor derivado, recalculado a cada chamada; o
// resultado independe da ordem dos lançamentos.
func Balance(entries []*Entry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case TypeIncome:
			balance = balance.Add(e.Amount)
		case TypeExpense:
			balance = balance.Sub(e.Amount)
		}
	}
	return balance
}
