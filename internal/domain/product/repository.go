package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto ativo pelo código de barras
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// Search busca produtos pelo nome ou código de barras
	Search(ctx context.Context, term string, limit, offset int) ([]*Product, error)

	// FindLowStock lista os produtos ativos com estoque igual ou abaixo do mínimo
	FindLowStock(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// UpdateActive atualiza o status ativo/inativo de um produto
	UpdateActive(ctx context.Context, id string, active bool) error

	// AdjustStock aplica um ajuste manual de estoque (delta positivo ou
	// negativo), travando o resultado em zero. Retorna o estoque anterior
	// e o novo estoque.
	AdjustStock(ctx context.Context, id string, delta int) (previous int, current int, err error)

	// Count conta quantos produtos existem
	Count(ctx context.Context) (int, error)

	// ExistsByBarcode verifica se já existe um produto com o código de barras
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)
}
