package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Erros de validação da venda. Todos são detectados antes de qualquer
// escrita; ver também InsufficientStockError.
var (
	ErrEmptyCart            = errors.New("carrinho vazio")
	ErrInvalidQuantity      = errors.New("quantidade do item deve ser maior que zero")
	ErrRegisterClosed       = errors.New("caixa fechado: abra o caixa antes de registrar vendas")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrPersistenceFailure   = errors.New("falha ao gravar a venda: tente novamente")
)

// InsufficientStockError indica estoque insuficiente para um item do carrinho
type InsufficientStockError struct {
	ProductID   string
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("estoque insuficiente para %s", e.ProductName)
	}
	return fmt.Sprintf("estoque insuficiente para o produto %s", e.ProductID)
}

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "dinheiro"
	PaymentDebitCard  PaymentMethod = "cartao_debito"
	PaymentCreditCard PaymentMethod = "cartao_credito"
	PaymentPix        PaymentMethod = "pix"
)

// IsValid verifica se a forma de pagamento é uma das aceitas
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentDebitCard, PaymentCreditCard, PaymentPix:
		return true
	}
	return false
}

// Status representa o estado da venda
type Status string

const (
	// StatusFinalized é o único estado possível: a venda é criada já
	// finalizada e é imutável (não há fluxo de edição ou cancelamento).
	StatusFinalized Status = "finalizada"
)

// CartItem é uma linha do carrinho antes da finalização
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleItem é uma linha da venda com os dados do produto congelados no
// momento da finalização
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Sale representa uma venda finalizada
type Sale struct {
	ID            string          `json:"id"`
	Number        int             `json:"number"`     // Número sequencial do cupom na sessão de caixa
	SessionID     string          `json:"session_id"` // Sessão de caixa em que a venda foi registrada
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	OperatorID    string          `json:"operator_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewSale monta uma venda a partir dos itens já congelados. O total é sempre
// recalculado a partir das linhas, nunca aceito do chamador.
func NewSale(items []SaleItem, paymentMethod PaymentMethod, operatorID string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		items[i].TotalPrice = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		total = total.Add(items[i].TotalPrice)
	}

	return &Sale{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         total,
		OperatorID:    operatorID,
		PaymentMethod: paymentMethod,
		Status:        StatusFinalized,
		CreatedAt:     time.Now(),
	}, nil
}

// Receipt é o cupom não fiscal produzido na finalização da venda
type Receipt struct {
	Number        int             `json:"number"`
	CompanyName   string          `json:"company_name"`
	Document      string          `json:"document"` // CNPJ
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Items         []SaleItem      `json:"items"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
	OperatorName  string          `json:"operator_name"`
	IssuedAt      time.Time       `json:"issued_at"`
	Footer        string          `json:"footer"`
}
