package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferr/pdv-varejo/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound         = errors.New("produto não encontrado")
	ErrProductDuplicateBarcode = errors.New("produto com mesmo código de barras já existe")
	ErrProductInUse            = errors.New("produto possui movimentações e não pode ser excluído")
)

const productColumns = `id, name, barcode, price, cost_price, stock, min_stock,
		category_id, description, active, expiry_date, manufacture_date,
		entry_date, invoice_number, created_at, updated_at`

// ProductRepository implementa a interface product.Repository usando PostgreSQL
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, barcode, price, cost_price, stock, min_stock,
			category_id, description, active, expiry_date, manufacture_date,
			entry_date, invoice_number, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)`,
		p.ID, p.Name, p.Barcode, p.Price, p.CostPrice, p.Stock, p.MinStock,
		nullIfEmpty(p.CategoryID), p.Description, p.Active, p.ExpiryDate,
		p.ManufactureDate, p.EntryDate, p.InvoiceNumber, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE barcode = $1 AND active`, barcode)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por código de barras: %w", err)
	}

	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Search implementa product.Repository.Search
func (r *ProductRepository) Search(ctx context.Context, term string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE name ILIKE $1 OR barcode LIKE $2
		ORDER BY name ASC
		LIMIT $3 OFFSET $4`,
		"%"+term+"%", term+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// FindLowStock implementa product.Repository.FindLowStock
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE active AND stock <= min_stock
		ORDER BY stock ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos com estoque baixo: %w", err)
	}
	defer rows.Close()

	return scanProductRows(rows)
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, barcode = $2, price = $3, cost_price = $4,
			min_stock = $5, category_id = $6, description = $7,
			expiry_date = $8, manufacture_date = $9, invoice_number = $10,
			updated_at = $11
		WHERE id = $12`,
		p.Name, p.Barcode, p.Price, p.CostPrice, p.MinStock,
		nullIfEmpty(p.CategoryID), p.Description, p.ExpiryDate,
		p.ManufactureDate, p.InvoiceNumber, p.UpdatedAt, p.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Produto referenciado por movimentações ou itens de venda;
			// nesse caso o caminho é desativá-lo, não excluí-lo
			return ErrProductInUse
		}
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdateActive implementa product.Repository.UpdateActive
func (r *ProductRepository) UpdateActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.Exec(ctx,
		"UPDATE products SET active = $1, updated_at = $2 WHERE id = $3",
		active, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status do produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// AdjustStock implementa product.Repository.AdjustStock. O resultado do
// ajuste é travado em zero no próprio comando, evitando estoque negativo.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int) (int, int, error) {
	var previous, current int
	err := r.db.QueryRow(ctx,
		`WITH prev AS (
			SELECT stock FROM products WHERE id = $1 FOR UPDATE
		)
		UPDATE products p SET stock = GREATEST(0, p.stock + $2), updated_at = $3
		FROM prev
		WHERE p.id = $1
		RETURNING prev.stock, p.stock`,
		id, delta, time.Now()).Scan(&previous, &current)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, ErrProductNotFound
		}
		return 0, 0, fmt.Errorf("erro ao ajustar estoque: %w", err)
	}

	return previous, current, nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// ExistsByBarcode implementa product.Repository.ExistsByBarcode
func (r *ProductRepository) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM products WHERE barcode = $1)",
		barcode).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do produto: %w", err)
	}

	return exists, nil
}

// scanProduct lê um produto de uma linha de resultado
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var categoryID *string

	err := row.Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Price, &p.CostPrice, &p.Stock,
		&p.MinStock, &categoryID, &p.Description, &p.Active, &p.ExpiryDate,
		&p.ManufactureDate, &p.EntryDate, &p.InvoiceNumber, &p.CreatedAt,
		&p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		p.CategoryID = *categoryID
	}

	return &p, nil
}

// scanProductRows é um método auxiliar para processar resultados de consultas
// que retornam múltiplos produtos
func scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

// nullIfEmpty converte string vazia em NULL para colunas com chave estrangeira
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
