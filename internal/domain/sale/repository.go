package sale

import (
	"context"
	"time"

	"github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Finalize grava a venda e todos os seus efeitos em uma única
	// transação: decremento condicional de estoque por item, inserção da
	// venda e das linhas, um movimento de estoque de saída por item, a
	// entrada no fluxo de caixa e o incremento do número de cupom da
	// sessão. Se qualquer decremento falhar por falta de estoque, nada é
	// gravado e o erro é *InsufficientStockError. Em caso de sucesso,
	// s.Number recebe o número de cupom atribuído.
	Finalize(ctx context.Context, s *Sale, sessionID string, entry *cashflow.Entry) error

	// FindByID busca uma venda pelo ID (com itens)
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas por período, mais recentes primeiro
	List(ctx context.Context, from, to time.Time, limit, offset int) ([]*Sale, error)

	// ListBySession lista as vendas finalizadas durante uma sessão de caixa
	ListBySession(ctx context.Context, sessionID string) ([]*Sale, error)
}
