package register

import (
	"context"
	"time"
)

// Repository define a interface para operações de sessões de caixa
type Repository interface {
	// Open persiste uma nova sessão aberta. Falha com ErrAlreadyOpen se o
	// terminal já tiver uma sessão aberta (garantido por índice único
	// parcial, não por verificação no cliente).
	Open(ctx context.Context, s *Session) error

	// Close persiste o fechamento de uma sessão aberta
	Close(ctx context.Context, s *Session) error

	// FindByID busca uma sessão pelo ID
	FindByID(ctx context.Context, id string) (*Session, error)

	// FindOpenByTerminal busca a sessão aberta de um terminal; retorna
	// ErrNoOpenSession se o caixa estiver fechado
	FindOpenByTerminal(ctx context.Context, terminalID string) (*Session, error)

	// List lista as sessões por período de abertura, mais recentes primeiro
	List(ctx context.Context, from, to time.Time, limit, offset int) ([]*Session, error)
}
