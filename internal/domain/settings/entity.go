package settings

import (
	"time"
)

// DefaultAccount é a conta usada nos lançamentos de venda quando nenhuma
// conta padrão foi configurada
const DefaultAccount = "Caixa Principal"

// Company guarda os dados cadastrais da empresa usados no cabeçalho do
// cupom e nas configurações gerais. Registro único (singleton).
type Company struct {
	CompanyName    string    `json:"company_name"`
	Document       string    `json:"document"` // CNPJ
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	DefaultAccount string    `json:"default_account"` // Conta padrão do fluxo de caixa
	ReceiptFooter  string    `json:"receipt_footer"`  // Mensagem de rodapé do cupom
	UpdatedAt      time.Time `json:"updated_at"`
}

// Account retorna a conta padrão configurada, ou DefaultAccount
func (c *Company) Account() string {
	if c.DefaultAccount == "" {
		return DefaultAccount
	}
	return c.DefaultAccount
}
