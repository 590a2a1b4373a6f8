package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferr/pdv-varejo/internal/domain/settings"
)

// SettingsRepository implementa a interface settings.Repository usando PostgreSQL.
// As configurações da empresa são mantidas em um registro único com id fixo.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository cria uma nova instância de SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) settings.Repository {
	return &SettingsRepository{
		db: db,
	}
}

// Get implementa settings.Repository.Get
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Company, error) {
	var c settings.Company
	err := r.db.QueryRow(ctx,
		`SELECT company_name, document, address, phone, default_account, receipt_footer, updated_at
		FROM settings WHERE id = 1`).Scan(
		&c.CompanyName, &c.Document, &c.Address, &c.Phone,
		&c.DefaultAccount, &c.ReceiptFooter, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nada configurado ainda: devolve o registro vazio
			return &settings.Company{}, nil
		}
		return nil, fmt.Errorf("erro ao buscar configurações: %w", err)
	}

	return &c, nil
}

// Save implementa settings.Repository.Save
func (r *SettingsRepository) Save(ctx context.Context, c *settings.Company) error {
	c.UpdatedAt = time.Now()

	_, err := r.db.Exec(ctx,
		`INSERT INTO settings (id, company_name, document, address, phone, default_account, receipt_footer, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			document = EXCLUDED.document,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			default_account = EXCLUDED.default_account,
			receipt_footer = EXCLUDED.receipt_footer,
			updated_at = EXCLUDED.updated_at`,
		c.CompanyName, c.Document, c.Address, c.Phone,
		c.DefaultAccount, c.ReceiptFooter, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao salvar configurações: %w", err)
	}

	return nil
}
