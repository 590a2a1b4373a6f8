package register

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTerminal   = errors.New("terminal do caixa não informado")
	ErrNegativeAmount  = errors.New("valores contados não podem ser negativos")
	ErrAlreadyOpen     = errors.New("já existe um caixa aberto para este terminal")
	ErrAlreadyClosed   = errors.New("esta sessão de caixa já foi fechada")
	ErrSessionNotFound = errors.New("sessão de caixa não encontrada")
	ErrNoOpenSession   = errors.New("não há caixa aberto para este terminal")
)

// State representa o estado de uma sessão de caixa. O estado é persistido
// explicitamente na sessão, nunca inferido a partir de pares de eventos.
type State string

const (
	StateOpen   State = "aberto"
	StateClosed State = "fechado"
)

// Session representa uma sessão de caixa (abertura até fechamento) de um
// terminal. Os valores contados na abertura e no fechamento são registro
// histórico apenas: nenhuma conciliação com o fluxo de caixa é feita.
type Session struct {
	ID                string           `json:"id"`
	TerminalID        string           `json:"terminal_id"`
	OperatorID        string           `json:"operator_id"`
	State             State            `json:"state"`
	OpenedAt          time.Time        `json:"opened_at"`
	OpeningCash       decimal.Decimal  `json:"opening_cash"`
	OpeningCards      decimal.Decimal  `json:"opening_cards"`
	OpeningOther      decimal.Decimal  `json:"opening_other"`
	ClosedAt          *time.Time       `json:"closed_at"`
	ClosingCash       *decimal.Decimal `json:"closing_cash"`
	ClosingCards      *decimal.Decimal `json:"closing_cards"`
	ClosingOther      *decimal.Decimal `json:"closing_other"`
	Notes             string           `json:"notes"`
	LastReceiptNumber int              `json:"last_receipt_number"` // Último número de cupom emitido na sessão
	CreatedAt         time.Time        `json:"created_at"`
}

// NewSession abre uma nova sessão de caixa com os valores contados
func NewSession(terminalID, operatorID string, cash, cards, other decimal.Decimal) (*Session, error) {
	if terminalID == "" {
		return nil, ErrEmptyTerminal
	}
	if cash.IsNegative() || cards.IsNegative() || other.IsNegative() {
		return nil, ErrNegativeAmount
	}

	now := time.Now()
	return &Session{
		ID:           uuid.New().String(),
		TerminalID:   terminalID,
		OperatorID:   operatorID,
		State:        StateOpen,
		OpenedAt:     now,
		OpeningCash:  cash,
		OpeningCards: cards,
		OpeningOther: other,
		CreatedAt:    now,
	}, nil
}

// IsOpen verifica se a sessão está aberta
func (s *Session) IsOpen() bool {
	return s.State == StateOpen
}

// Close fecha a sessão com os valores contados no fechamento
func (s *Session) Close(cash, cards, other decimal.Decimal, notes string) error {
	if !s.IsOpen() {
		return ErrAlreadyClosed
	}
	if cash.IsNegative() || cards.IsNegative() || other.IsNegative() {
		return ErrNegativeAmount
	}

	now := time.Now()
	s.State = StateClosed
	s.ClosedAt = &now
	s.ClosingCash = &cash
	s.ClosingCards = &cards
	s.ClosingOther = &other
	s.Notes = notes
	return nil
}
