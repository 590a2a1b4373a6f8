package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
	"github.com/lucasferr/pdv-varejo/internal/domain/product"
	"github.com/lucasferr/pdv-varejo/internal/domain/register"
	"github.com/lucasferr/pdv-varejo/internal/domain/sale"
	"github.com/lucasferr/pdv-varejo/internal/domain/settings"
	"github.com/lucasferr/pdv-varejo/internal/domain/user"
)

// SaleService coordena a finalização de vendas no PDV: valida o carrinho e o
// caixa, congela os dados dos produtos e delega a gravação atômica ao
// repositório de vendas.
type SaleService struct {
	sales     sale.Repository
	products  product.Repository
	registers register.Repository
	users     user.Repository
	settings  settings.Repository
}

// NewSaleService cria uma nova instância de SaleService
func NewSaleService(sales sale.Repository, products product.Repository, registers register.Repository, users user.Repository, set settings.Repository) *SaleService {
	return &SaleService{
		sales:     sales,
		products:  products,
		registers: registers,
		users:     users,
		settings:  set,
	}
}

// CashFlowSaleCategory é a categoria usada nos lançamentos gerados por venda
const CashFlowSaleCategory = "Vendas"

// Finalize finaliza uma venda: valida caixa aberto, carrinho e estoque,
// grava todos os efeitos em uma única transação e devolve a venda com o
// cupom pronto para impressão. Em qualquer erro nada fica gravado.
func (s *SaleService) Finalize(ctx context.Context, cart []sale.CartItem, paymentMethod sale.PaymentMethod, operatorID, terminalID string) (*sale.Sale, *sale.Receipt, error) {
	// O caixa precisa estar aberto antes de qualquer outra coisa. A
	// condição é revalidada dentro da transação de gravação, mas a
	// verificação antecipada evita congelar preços à toa.
	session, err := s.registers.FindOpenByTerminal(ctx, terminalID)
	if err != nil {
		if errors.Is(err, register.ErrNoOpenSession) {
			return nil, nil, sale.ErrRegisterClosed
		}
		return nil, nil, fmt.Errorf("erro ao verificar caixa: %w", err)
	}

	if len(cart) == 0 {
		return nil, nil, sale.ErrEmptyCart
	}
	if !paymentMethod.IsValid() {
		return nil, nil, sale.ErrInvalidPaymentMethod
	}

	// Congelar nome e preço de cada produto no momento da finalização e
	// antecipar a checagem de estoque para devolver o erro com o nome do
	// produto. A garantia real contra corrida é o decremento condicional.
	items := make([]sale.SaleItem, 0, len(cart))
	for _, line := range cart {
		if line.Quantity < 1 {
			return nil, nil, sale.ErrInvalidQuantity
		}

		p, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao buscar produto do carrinho: %w", err)
		}

		if !p.HasStock(line.Quantity) {
			return nil, nil, &sale.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
			}
		}

		items = append(items, sale.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
		})
	}

	newSale, err := sale.NewSale(items, paymentMethod, operatorID)
	if err != nil {
		return nil, nil, err
	}

	company, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar configurações: %w", err)
	}

	// O lançamento nasce pago: venda de balcão não gera contas a receber.
	// A descrição definitiva (com o número do cupom) é atribuída na
	// gravação, junto com a numeração.
	entry, err := cashflow.NewEntry(cashflow.TypeIncome, newSale.Total, "Venda PDV",
		CashFlowSaleCategory, company.Account(), newSale.CreatedAt, cashflow.StatusPaid, operatorID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao montar lançamento da venda: %w", err)
	}

	if err := s.sales.Finalize(ctx, newSale, session.ID, entry); err != nil {
		var insufficient *sale.InsufficientStockError
		if errors.Is(err, sale.ErrRegisterClosed) || errors.As(err, &insufficient) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", sale.ErrPersistenceFailure, err)
	}

	receipt := s.buildReceipt(ctx, newSale, company)
	return newSale, receipt, nil
}

// buildReceipt monta o cupom não fiscal de uma venda já gravada. Falha ao
// resolver o nome do operador não invalida a venda: o cupom sai sem o nome.
func (s *SaleService) buildReceipt(ctx context.Context, sl *sale.Sale, company *settings.Company) *sale.Receipt {
	operatorName := ""
	if u, err := s.users.FindByID(ctx, sl.OperatorID); err == nil {
		operatorName = u.Name
	}

	return &sale.Receipt{
		Number:        sl.Number,
		CompanyName:   company.CompanyName,
		Document:      company.Document,
		Address:       company.Address,
		Phone:         company.Phone,
		Items:         sl.Items,
		PaymentMethod: sl.PaymentMethod,
		Total:         sl.Total,
		OperatorName:  operatorName,
		IssuedAt:      sl.CreatedAt,
		Footer:        company.ReceiptFooter,
	}
}

// ReceiptForSale reconstrói o cupom de uma venda já finalizada (reimpressão)
func (s *SaleService) ReceiptForSale(ctx context.Context, saleID string) (*sale.Receipt, error) {
	sl, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	company, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configurações: %w", err)
	}

	return s.buildReceipt(ctx, sl, company), nil
}

// List lista as vendas de um período
func (s *SaleService) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*sale.Sale, error) {
	return s.sales.List(ctx, from, to, limit, offset)
}
