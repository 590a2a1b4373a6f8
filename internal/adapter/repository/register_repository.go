package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferr/pdv-varejo/internal/domain/register"
)

const sessionColumns = `id, terminal_id, operator_id, state, opened_at,
		opening_cash, opening_cards, opening_other, closed_at,
		closing_cash, closing_cards, closing_other, notes,
		last_receipt_number, created_at`

// RegisterRepository implementa a interface register.Repository usando PostgreSQL
type RegisterRepository struct {
	db *pgxpool.Pool
}

// NewRegisterRepository cria uma nova instância de RegisterRepository
func NewRegisterRepository(db *pgxpool.Pool) register.Repository {
	return &RegisterRepository{
		db: db,
	}
}

// Open implementa register.Repository.Open. O índice único parcial sobre
// (terminal_id) WHERE state = 'aberto' garante no banco que um terminal
// nunca tem duas sessões abertas, mesmo com aberturas concorrentes.
func (r *RegisterRepository) Open(ctx context.Context, s *register.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO register_sessions (
			id, terminal_id, operator_id, state, opened_at,
			opening_cash, opening_cards, opening_other,
			notes, last_receipt_number, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.TerminalID, s.OperatorID, string(s.State), s.OpenedAt,
		s.OpeningCash, s.OpeningCards, s.OpeningOther, s.Notes,
		s.LastReceiptNumber, s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return register.ErrAlreadyOpen
		}
		return fmt.Errorf("erro ao abrir caixa: %w", err)
	}

	return nil
}

// Close implementa register.Repository.Close
func (r *RegisterRepository) Close(ctx context.Context, s *register.Session) error {
	result, err := r.db.Exec(ctx,
		`UPDATE register_sessions SET
			state = $1, closed_at = $2, closing_cash = $3,
			closing_cards = $4, closing_other = $5, notes = $6
		WHERE id = $7 AND state = 'aberto'`,
		string(s.State), s.ClosedAt, s.ClosingCash, s.ClosingCards,
		s.ClosingOther, s.Notes, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao fechar caixa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return register.ErrAlreadyClosed
	}

	return nil
}

// FindByID implementa register.Repository.FindByID
func (r *RegisterRepository) FindByID(ctx context.Context, id string) (*register.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM register_sessions WHERE id = $1`, id)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, register.ErrSessionNotFound
		}
		return nil, fmt.Errorf("erro ao buscar sessão de caixa: %w", err)
	}

	return s, nil
}

// FindOpenByTerminal implementa register.Repository.FindOpenByTerminal
func (r *RegisterRepository) FindOpenByTerminal(ctx context.Context, terminalID string) (*register.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM register_sessions
		WHERE terminal_id = $1 AND state = 'aberto'`,
		terminalID)

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, register.ErrNoOpenSession
		}
		return nil, fmt.Errorf("erro ao buscar sessão aberta: %w", err)
	}

	return s, nil
}

// List implementa register.Repository.List
func (r *RegisterRepository) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*register.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM register_sessions
		WHERE opened_at >= $1 AND opened_at <= $2
		ORDER BY opened_at DESC
		LIMIT $3 OFFSET $4`,
		from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar sessões de caixa: %w", err)
	}
	defer rows.Close()

	sessions := make([]*register.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler sessão: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sessions, nil
}

// scanSession lê uma sessão de uma linha de resultado
func scanSession(row pgx.Row) (*register.Session, error) {
	var s register.Session
	var state string

	err := row.Scan(
		&s.ID, &s.TerminalID, &s.OperatorID, &state, &s.OpenedAt,
		&s.OpeningCash, &s.OpeningCards, &s.OpeningOther, &s.ClosedAt,
		&s.ClosingCash, &s.ClosingCards, &s.ClosingOther, &s.Notes,
		&s.LastReceiptNumber, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.State = register.State(state)
	return &s, nil
}
