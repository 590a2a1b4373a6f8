package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
	"github.com/shopspring/decimal"
)

// CashFlowRepository implementa a interface cashflow.Repository usando PostgreSQL
type CashFlowRepository struct {
	db *pgxpool.Pool
}

// NewCashFlowRepository cria uma nova instância de CashFlowRepository
func NewCashFlowRepository(db *pgxpool.Pool) cashflow.Repository {
	return &CashFlowRepository{
		db: db,
	}
}

// Append implementa cashflow.Repository.Append
func (r *CashFlowRepository) Append(ctx context.Context, e *cashflow.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cash_flow_entries (
			id, type, amount, description, category, account, date,
			due_date, status, recurring, recurrence_period, user_id,
			notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, string(e.Type), e.Amount, e.Description, e.Category, e.Account,
		e.Date, e.DueDate, string(e.Status), e.Recurring, e.RecurrencePeriod,
		e.UserID, e.Notes, e.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar lançamento: %w", err)
	}

	return nil
}

// Query implementa cashflow.Repository.Query
func (r *CashFlowRepository) Query(ctx context.Context, f cashflow.Filter, limit, offset int) ([]*cashflow.Entry, error) {
	where, args := buildCashFlowWhere(f)
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		`SELECT id, type, amount, description, category, account, date,
			due_date, status, recurring, recurrence_period, user_id,
			notes, created_at
		FROM cash_flow_entries
		%s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar fluxo de caixa: %w", err)
	}
	defer rows.Close()

	return scanEntryRows(rows)
}

// Balance implementa cashflow.Repository.Balance. O saldo é sempre derivado
// da soma dos lançamentos filtrados, nunca materializado.
func (r *CashFlowRepository) Balance(ctx context.Context, f cashflow.Filter) (decimal.Decimal, error) {
	where, args := buildCashFlowWhere(f)

	query := fmt.Sprintf(
		`SELECT COALESCE(SUM(CASE WHEN type = 'entrada' THEN amount ELSE -amount END), 0)
		FROM cash_flow_entries
		%s`, where)

	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao calcular saldo: %w", err)
	}

	return balance, nil
}

// buildCashFlowWhere monta a cláusula WHERE a partir do filtro
func buildCashFlowWhere(f cashflow.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)

	if f.From != nil {
		args = append(args, *f.From)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Account != "" {
		args = append(args, f.Account)
		conditions = append(conditions, fmt.Sprintf("account = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// scanEntryRows é um método auxiliar para processar resultados de consultas
// que retornam múltiplos lançamentos
func scanEntryRows(rows pgx.Rows) ([]*cashflow.Entry, error) {
	entries := make([]*cashflow.Entry, 0)

	for rows.Next() {
		var e cashflow.Entry
		var entryType, status string

		err := rows.Scan(&e.ID, &entryType, &e.Amount, &e.Description,
			&e.Category, &e.Account, &e.Date, &e.DueDate, &status,
			&e.Recurring, &e.RecurrencePeriod, &e.UserID, &e.Notes,
			&e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lançamento: %w", err)
		}

		e.Type = cashflow.EntryType(entryType)
		e.Status = cashflow.EntryStatus(status)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return entries, nil
}
