package category

import (
	"context"
)

// Repository define a interface para operações de repositório de categorias
type Repository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)

	// List lista todas as categorias ordenadas por nome
	List(ctx context.Context) ([]*Category, error)

	// Update atualiza o nome de uma categoria
	Update(ctx context.Context, c *Category) error

	// Delete remove uma categoria
	Delete(ctx context.Context, id string) error

	// RemoveDuplicates remove categorias com nome repetido, preservando a
	// mais antiga de cada nome e reapontando os produtos para ela.
	// Retorna quantas categorias foram removidas.
	RemoveDuplicates(ctx context.Context) (int, error)
}
