package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferr/pdv-varejo/internal/domain/category"
)

// Erros específicos do repositório
var (
	ErrCategoryNotFound  = errors.New("categoria não encontrada")
	ErrCategoryDuplicate = errors.New("categoria com mesmo nome já existe")
)

// CategoryRepository implementa a interface category.Repository usando PostgreSQL
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) category.Repository {
	return &CategoryRepository{
		db: db,
	}
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)",
		c.ID, c.Name, c.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCategoryDuplicate
		}
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}

	return nil
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var c category.Category
	err := r.db.QueryRow(ctx,
		"SELECT id, name, created_at FROM categories WHERE id = $1",
		id).Scan(&c.ID, &c.Name, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}

	return &c, nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, created_at FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return categories, nil
}

// Update implementa category.Repository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	result, err := r.db.Exec(ctx,
		"UPDATE categories SET name = $1 WHERE id = $2",
		c.Name, c.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrCategoryDuplicate
		}
		return fmt.Errorf("erro ao atualizar categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// RemoveDuplicates implementa category.Repository.RemoveDuplicates. Para
// cada nome repetido, a categoria mais antiga é preservada, os produtos das
// demais são reapontados para ela e as duplicadas são removidas.
func (r *CategoryRepository) RemoveDuplicates(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// Reapontar produtos das categorias duplicadas para a mais antiga
	_, err = tx.Exec(ctx,
		`UPDATE products p SET category_id = keep.id
		FROM categories c
		JOIN LATERAL (
			SELECT id FROM categories k
			WHERE k.name = c.name
			ORDER BY created_at ASC, id ASC
			LIMIT 1
		) keep ON true
		WHERE p.category_id = c.id AND c.id <> keep.id`)
	if err != nil {
		return 0, fmt.Errorf("erro ao reapontar produtos: %w", err)
	}

	// Remover as duplicadas, mantendo a mais antiga de cada nome
	result, err := tx.Exec(ctx,
		`DELETE FROM categories c
		USING (
			SELECT name, MIN(created_at) AS first_created
			FROM categories
			GROUP BY name
			HAVING COUNT(*) > 1
		) dup
		WHERE c.name = dup.name AND c.created_at > dup.first_created`)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover categorias duplicadas: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return int(result.RowsAffected()), nil
}
