package dto

import (
	"time"

	"github.com/lucasferr/pdv-varejo/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin pdv estoque"`
}

// UserUpdateRequest representa a requisição de atualização de usuário
type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin pdv estoque"`
	Status   string `json:"status" binding:"required,oneof=active inactive blocked"`
}

// UserResponse representa a resposta de usuário (sem a senha)
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToUserResponse converte um usuário do domínio para DTO
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários para DTO
func ToUserListResponse(users []*user.User) []UserResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = *ToUserResponse(u)
	}
	return items
}
