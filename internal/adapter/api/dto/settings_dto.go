package dto

import (
	"time"

	"github.com/lucasferr/pdv-varejo/internal/domain/settings"
)

// SettingsRequest representa a requisição de atualização das configurações
type SettingsRequest struct {
	CompanyName    string `json:"company_name"`
	Document       string `json:"document"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	DefaultAccount string `json:"default_account"`
	ReceiptFooter  string `json:"receipt_footer"`
}

// SettingsResponse representa a resposta das configurações
type SettingsResponse struct {
	CompanyName    string    `json:"company_name"`
	Document       string    `json:"document"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	DefaultAccount string    `json:"default_account"`
	ReceiptFooter  string    `json:"receipt_footer"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToSettingsResponse converte as configurações do domínio para DTO
func ToSettingsResponse(c *settings.Company) *SettingsResponse {
	return &SettingsResponse{
		CompanyName:    c.CompanyName,
		Document:       c.Document,
		Address:        c.Address,
		Phone:          c.Phone,
		DefaultAccount: c.DefaultAccount,
		ReceiptFooter:  c.ReceiptFooter,
		UpdatedAt:      c.UpdatedAt,
	}
}
