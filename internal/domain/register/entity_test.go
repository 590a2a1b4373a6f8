package register

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSessionAbreComEstadoAberto(t *testing.T) {
	s, err := NewSession("caixa-01", "op-1",
		decimal.RequireFromString("150.00"), decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if s.State != StateOpen || !s.IsOpen() {
		t.Errorf("sessão nova deveria estar aberta, estado = %s", s.State)
	}
	if s.LastReceiptNumber != 0 {
		t.Errorf("contador de cupom = %d, esperado 0", s.LastReceiptNumber)
	}
	if s.ClosedAt != nil {
		t.Error("sessão nova não deveria ter data de fechamento")
	}
}

func TestNewSessionValidaEntrada(t *testing.T) {
	if _, err := NewSession("", "op-1", decimal.Zero, decimal.Zero, decimal.Zero); !errors.Is(err, ErrEmptyTerminal) {
		t.Errorf("terminal vazio: err = %v, esperado ErrEmptyTerminal", err)
	}
	neg := decimal.RequireFromString("-1.00")
	if _, err := NewSession("caixa-01", "op-1", neg, decimal.Zero, decimal.Zero); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("valor negativo: err = %v, esperado ErrNegativeAmount", err)
	}
}

func TestCloseRegistraValoresContados(t *testing.T) {
	s, err := NewSession("caixa-01", "op-1", decimal.RequireFromString("100.00"), decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	cash := decimal.RequireFromString("350.75")
	cards := decimal.RequireFromString("420.00")
	if err := s.Close(cash, cards, decimal.Zero, "sobra de R$ 2,00"); err != nil {
		t.Fatalf("erro ao fechar: %v", err)
	}

	if s.State != StateClosed || s.IsOpen() {
		t.Errorf("estado após fechamento = %s, esperado %s", s.State, StateClosed)
	}
	if s.ClosedAt == nil {
		t.Fatal("fechamento sem data")
	}
	if s.ClosingCash == nil || !s.ClosingCash.Equal(cash) {
		t.Errorf("dinheiro contado = %v, esperado %s", s.ClosingCash, cash)
	}
	if s.Notes != "sobra de R$ 2,00" {
		t.Errorf("observações = %q", s.Notes)
	}
}

func TestCloseRejeitaSessaoJaFechada(t *testing.T) {
	s, err := NewSession("caixa-01", "op-1", decimal.Zero, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if err := s.Close(decimal.Zero, decimal.Zero, decimal.Zero, ""); err != nil {
		t.Fatalf("primeiro fechamento falhou: %v", err)
	}

	if err := s.Close(decimal.Zero, decimal.Zero, decimal.Zero, ""); !errors.Is(err, ErrAlreadyClosed) {
		t.Errorf("segundo fechamento: err = %v, esperado ErrAlreadyClosed", err)
	}
}

func TestCloseRejeitaValoresNegativos(t *testing.T) {
	s, err := NewSession("caixa-01", "op-1", decimal.Zero, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	neg := decimal.RequireFromString("-10.00")
	if err := s.Close(neg, decimal.Zero, decimal.Zero, ""); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("err = %v, esperado ErrNegativeAmount", err)
	}
	if !s.IsOpen() {
		t.Error("fechamento inválido não deveria mudar o estado da sessão")
	}
}
