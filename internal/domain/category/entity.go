package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome da categoria não pode ser vazio")

// Category representa uma categoria de produtos
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory cria uma nova categoria
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// Rename altera o nome da categoria
func (c *Category) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}
