package cashflow

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustEntry(t *testing.T, entryType EntryType, amount, category string, date time.Time) *Entry {
	t.Helper()
	e, err := NewEntry(entryType, decimal.RequireFromString(amount), "lançamento de teste", category, "Caixa Principal", date, StatusPaid, "op-1")
	if err != nil {
		t.Fatalf("erro ao criar lançamento: %v", err)
	}
	return e
}

func TestNewEntryValidaValorEDescricao(t *testing.T) {
	now := time.Now()

	if _, err := NewEntry(TypeIncome, decimal.Zero, "venda", "Vendas", "Caixa Principal", now, StatusPaid, "op-1"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("valor zero: err = %v, esperado ErrInvalidAmount", err)
	}
	if _, err := NewEntry(TypeExpense, decimal.RequireFromString("-5.00"), "estorno", "Outros", "Caixa Principal", now, StatusPaid, "op-1"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("valor negativo: err = %v, esperado ErrInvalidAmount", err)
	}
	if _, err := NewEntry(TypeIncome, decimal.RequireFromString("10.00"), "", "Vendas", "Caixa Principal", now, StatusPaid, "op-1"); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("descrição vazia: err = %v, esperado ErrEmptyDescription", err)
	}
}

func TestBalanceSomaEntradasESubtraiSaidas(t *testing.T) {
	now := time.Now()
	entries := []*Entry{
		mustEntry(t, TypeIncome, "100.00", "Vendas", now),
		mustEntry(t, TypeIncome, "25.50", "Vendas", now),
		mustEntry(t, TypeExpense, "40.00", "Fornecedores", now),
	}

	want := decimal.RequireFromString("85.50")
	if got := Balance(entries); !got.Equal(want) {
		t.Errorf("saldo = %s, esperado %s", got, want)
	}

	// O saldo é derivado: a ordem dos lançamentos não pode importar
	reversed := []*Entry{entries[2], entries[1], entries[0]}
	if got := Balance(reversed); !got.Equal(want) {
		t.Errorf("saldo com ordem invertida = %s, esperado %s", got, want)
	}
}

func TestBalanceVazioEZero(t *testing.T) {
	if got := Balance(nil); !got.IsZero() {
		t.Errorf("saldo sem lançamentos = %s, esperado 0", got)
	}
}

func TestFilterMatches(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	entry := mustEntry(t, TypeIncome, "50.00", "Vendas", base)

	from := base.Add(-time.Hour)
	to := base.Add(time.Hour)
	after := base.Add(2 * time.Hour)

	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"filtro vazio aceita tudo", Filter{}, true},
		{"período contendo a data", Filter{From: &from, To: &to}, true},
		{"período posterior à data", Filter{From: &after}, false},
		{"tipo igual", Filter{Type: TypeIncome}, true},
		{"tipo diferente", Filter{Type: TypeExpense}, false},
		{"categoria igual", Filter{Category: "Vendas"}, true},
		{"categoria diferente", Filter{Category: "Fornecedores"}, false},
		{"conta diferente", Filter{Account: "Banco"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(entry); got != tc.want {
				t.Errorf("Matches = %v, esperado %v", got, tc.want)
			}
		})
	}
}
