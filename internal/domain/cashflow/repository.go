package cashflow

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define a interface para o livro de fluxo de caixa.
// Lançamentos são apenas adicionados e consultados, nunca alterados.
type Repository interface {
	// Append adiciona um lançamento ao livro
	Append(ctx context.Context, e *Entry) error

	// Query lista os lançamentos aceitos pelo filtro, por data decrescente
	Query(ctx context.Context, f Filter, limit, offset int) ([]*Entry, error)

	// Balance calcula o saldo (entradas - saídas) do conjunto filtrado
	Balance(ctx context.Context, f Filter) (decimal.Decimal, error)
}
