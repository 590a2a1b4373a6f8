package settings

import (
	"context"
)

// Repository define a interface para as configurações da empresa
type Repository interface {
	// Get retorna as configurações da empresa. Se nada foi configurado,
	// retorna um registro vazio, nunca erro de não encontrado.
	Get(ctx context.Context) (*Company, error)

	// Save grava as configurações da empresa (upsert do registro único)
	Save(ctx context.Context, c *Company) error
}
