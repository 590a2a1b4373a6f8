package dto

import (
	"time"

	"github.com/lucasferr/pdv-varejo/internal/domain/category"
)

// CategoryRequest representa a requisição de categoria
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryCleanupResponse representa o resultado da remoção de duplicadas
type CategoryCleanupResponse struct {
	Removed int `json:"removed"`
}

// ToCategoryResponse converte uma categoria do domínio para DTO
func ToCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias para DTO
func ToCategoryListResponse(categories []*category.Category) []CategoryResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = *ToCategoryResponse(c)
	}
	return items
}
