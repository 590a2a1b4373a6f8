package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
	"github.com/lucasferr/pdv-varejo/internal/domain/sale"
	"github.com/lucasferr/pdv-varejo/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// SaleRepository implementa a interface sale.Repository usando PostgreSQL
type SaleRepository struct {
	db *database.PostgresDB
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *database.PostgresDB) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Finalize implementa sale.Repository.Finalize. Todos os efeitos da venda
// são gravados em uma única transação: ou tudo é aplicado, ou nada é.
func (r *SaleRepository) Finalize(ctx context.Context, s *sale.Sale, sessionID string, entry *cashflow.Entry) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		// Atribuir o número do cupom incrementando o contador da sessão.
		// A condição state = 'aberto' revalida o caixa dentro da transação.
		err := tx.QueryRow(ctx,
			`UPDATE register_sessions
			SET last_receipt_number = last_receipt_number + 1
			WHERE id = $1 AND state = 'aberto'
			RETURNING last_receipt_number`,
			sessionID).Scan(&s.Number)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return sale.ErrRegisterClosed
			}
			return fmt.Errorf("erro ao numerar cupom: %w", err)
		}
		s.SessionID = sessionID

		// Decrementar o estoque de cada item com decremento condicional:
		// a verificação e a baixa são um único comando, então duas vendas
		// concorrentes nunca deixam o estoque negativo.
		type decremented struct {
			item     sale.SaleItem
			previous int
			current  int
		}
		applied := make([]decremented, 0, len(s.Items))

		for _, item := range s.Items {
			var previous, current int
			err := tx.QueryRow(ctx,
				`UPDATE products
				SET stock = stock - $2, updated_at = $3
				WHERE id = $1 AND stock >= $2
				RETURNING stock + $2, stock`,
				item.ProductID, item.Quantity, time.Now()).Scan(&previous, &current)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return &sale.InsufficientStockError{
						ProductID:   item.ProductID,
						ProductName: item.ProductName,
					}
				}
				return fmt.Errorf("erro ao baixar estoque: %w", err)
			}
			applied = append(applied, decremented{item: item, previous: previous, current: current})
		}

		// Gravar a venda e as linhas
		_, err = tx.Exec(ctx,
			`INSERT INTO sales (id, number, session_id, total, operator_id, payment_method, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, s.Number, s.SessionID, s.Total, s.OperatorID,
			string(s.PaymentMethod), string(s.Status), s.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao gravar venda: %w", err)
		}

		for _, item := range s.Items {
			_, err = tx.Exec(ctx,
				`INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price, total_price)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				s.ID, item.ProductID, item.ProductName, item.Quantity,
				item.UnitPrice, item.TotalPrice)
			if err != nil {
				return fmt.Errorf("erro ao gravar item da venda: %w", err)
			}
		}

		// Registrar um movimento de saída no diário de estoque por item
		reason := fmt.Sprintf("Venda %06d", s.Number)
		for _, d := range applied {
			_, err = tx.Exec(ctx,
				`INSERT INTO stock_movements (id, product_id, type, quantity, previous_stock, new_stock, reason, user_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				uuid.New().String(), d.item.ProductID, "saida", d.item.Quantity,
				d.previous, d.current, reason, s.OperatorID, s.CreatedAt)
			if err != nil {
				return fmt.Errorf("erro ao registrar movimento de estoque: %w", err)
			}
		}

		// Registrar a entrada no fluxo de caixa. A descrição recebe o
		// número do cupom, que só existe a partir desta transação.
		entry.Description = reason
		_, err = tx.Exec(ctx,
			`INSERT INTO cash_flow_entries (id, type, amount, description, category, account, date, due_date, status, recurring, recurrence_period, user_id, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			entry.ID, string(entry.Type), entry.Amount, entry.Description,
			entry.Category, entry.Account, entry.Date, entry.DueDate,
			string(entry.Status), entry.Recurring, entry.RecurrencePeriod,
			entry.UserID, entry.Notes, entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao registrar entrada no fluxo de caixa: %w", err)
		}

		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale
	var paymentMethod, status string

	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, number, session_id, total, operator_id, payment_method, status, created_at
		FROM sales WHERE id = $1`,
		id).Scan(&s.ID, &s.Number, &s.SessionID, &s.Total, &s.OperatorID,
		&paymentMethod, &status, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	s.PaymentMethod = sale.PaymentMethod(paymentMethod)
	s.Status = sale.Status(status)

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, number, session_id, total, operator_id, payment_method, status, created_at
		FROM sales
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// ListBySession implementa sale.Repository.ListBySession
func (r *SaleRepository) ListBySession(ctx context.Context, sessionID string) ([]*sale.Sale, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, number, session_id, total, operator_id, payment_method, status, created_at
		FROM sales
		WHERE session_id = $1
		ORDER BY number ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas da sessão: %w", err)
	}
	defer rows.Close()

	return r.scanSaleRows(ctx, rows)
}

// findItems carrega as linhas de uma venda
func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]sale.SaleItem, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT product_id, product_name, quantity, unit_price, total_price
		FROM sale_items WHERE sale_id = $1`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]sale.SaleItem, 0)
	for rows.Next() {
		var item sale.SaleItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

// scanSaleRows é um método auxiliar para processar resultados de consultas
// que retornam múltiplas vendas
func (r *SaleRepository) scanSaleRows(ctx context.Context, rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		var s sale.Sale
		var paymentMethod, status string

		err := rows.Scan(&s.ID, &s.Number, &s.SessionID, &s.Total,
			&s.OperatorID, &paymentMethod, &status, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		s.PaymentMethod = sale.PaymentMethod(paymentMethod)
		s.Status = sale.Status(status)
		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	// Carregar as linhas fora do cursor para não aninhar consultas
	for _, s := range sales {
		items, err := r.findItems(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}

	return sales, nil
}
