package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
	"github.com/lucasferr/pdv-varejo/internal/domain/product"
	"github.com/lucasferr/pdv-varejo/internal/domain/register"
	"github.com/lucasferr/pdv-varejo/internal/domain/sale"
	"github.com/lucasferr/pdv-varejo/internal/domain/settings"
	"github.com/lucasferr/pdv-varejo/internal/domain/stock"
	"github.com/lucasferr/pdv-varejo/internal/domain/user"
)

// Fakes em memória reproduzindo o contrato dos repositórios, incluindo a
// semântica tudo-ou-nada da finalização.

type memProducts struct {
	items map[string]*product.Product
}

func (m *memProducts) Create(_ context.Context, p *product.Product) error {
	m.items[p.ID] = p
	return nil
}

func (m *memProducts) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, errors.New("produto não encontrado")
	}
	return p, nil
}

func (m *memProducts) FindByBarcode(_ context.Context, barcode string) (*product.Product, error) {
	for _, p := range m.items {
		if p.Barcode == barcode && p.Active {
			return p, nil
		}
	}
	return nil, errors.New("produto não encontrado")
}

func (m *memProducts) List(context.Context, int, int) ([]*product.Product, error) { return nil, nil }
func (m *memProducts) Search(context.Context, string, int, int) ([]*product.Product, error) {
	return nil, nil
}
func (m *memProducts) FindLowStock(context.Context) ([]*product.Product, error) { return nil, nil }
func (m *memProducts) Update(context.Context, *product.Product) error           { return nil }
func (m *memProducts) Delete(context.Context, string) error                     { return nil }
func (m *memProducts) UpdateActive(context.Context, string, bool) error         { return nil }
func (m *memProducts) Count(context.Context) (int, error)                       { return len(m.items), nil }
func (m *memProducts) ExistsByBarcode(context.Context, string) (bool, error)    { return false, nil }

func (m *memProducts) AdjustStock(_ context.Context, id string, delta int) (int, int, error) {
	p, ok := m.items[id]
	if !ok {
		return 0, 0, errors.New("produto não encontrado")
	}
	previous := p.Stock
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	return previous, p.Stock, nil
}

type memRegisters struct {
	sessions map[string]*register.Session
}

func (m *memRegisters) Open(_ context.Context, s *register.Session) error {
	for _, existing := range m.sessions {
		if existing.TerminalID == s.TerminalID && existing.IsOpen() {
			return register.ErrAlreadyOpen
		}
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *memRegisters) Close(_ context.Context, s *register.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memRegisters) FindByID(_ context.Context, id string) (*register.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, register.ErrSessionNotFound
	}
	return s, nil
}

func (m *memRegisters) FindOpenByTerminal(_ context.Context, terminalID string) (*register.Session, error) {
	for _, s := range m.sessions {
		if s.TerminalID == terminalID && s.IsOpen() {
			return s, nil
		}
	}
	return nil, register.ErrNoOpenSession
}

func (m *memRegisters) List(context.Context, time.Time, time.Time, int, int) ([]*register.Session, error) {
	return nil, nil
}

type memUsers struct {
	items map[string]*user.User
}

func (m *memUsers) Create(_ context.Context, u *user.User) error { m.items[u.ID] = u; return nil }
func (m *memUsers) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := m.items[id]
	if !ok {
		return nil, errors.New("usuário não encontrado")
	}
	return u, nil
}
func (m *memUsers) FindByEmail(context.Context, string) (*user.User, error)  { return nil, nil }
func (m *memUsers) List(context.Context, int, int) ([]*user.User, error)     { return nil, nil }
func (m *memUsers) Update(context.Context, *user.User) error                 { return nil }
func (m *memUsers) UpdateStatus(context.Context, string, user.Status) error  { return nil }
func (m *memUsers) UpdateLastLogin(context.Context, string) error            { return nil }
func (m *memUsers) Delete(context.Context, string) error                     { return nil }
func (m *memUsers) ExistsByEmail(context.Context, string) (bool, error)      { return false, nil }

type memSettings struct {
	company settings.Company
}

func (m *memSettings) Get(context.Context) (*settings.Company, error) {
	c := m.company
	return &c, nil
}
func (m *memSettings) Save(_ context.Context, c *settings.Company) error {
	m.company = *c
	return nil
}

// memSales reproduz a finalização transacional: primeiro valida caixa e
// estoque de todos os itens, depois aplica todos os efeitos. Se qualquer
// validação falha, nada é alterado.
type memSales struct {
	products  *memProducts
	registers *memRegisters

	saved     []*sale.Sale
	movements []*stock.Movement
	entries   []*cashflow.Entry

	failWith error
}

func (m *memSales) Finalize(_ context.Context, s *sale.Sale, sessionID string, entry *cashflow.Entry) error {
	if m.failWith != nil {
		return m.failWith
	}

	sess, ok := m.registers.sessions[sessionID]
	if !ok || !sess.IsOpen() {
		return sale.ErrRegisterClosed
	}

	for _, item := range s.Items {
		p, ok := m.products.items[item.ProductID]
		if !ok || p.Stock < item.Quantity {
			return &sale.InsufficientStockError{ProductID: item.ProductID, ProductName: item.ProductName}
		}
	}

	sess.LastReceiptNumber++
	s.Number = sess.LastReceiptNumber
	s.SessionID = sessionID
	reason := fmt.Sprintf("Venda %06d", s.Number)

	for _, item := range s.Items {
		p := m.products.items[item.ProductID]
		previous := p.Stock
		p.Stock -= item.Quantity
		m.movements = append(m.movements, &stock.Movement{
			ProductID:     item.ProductID,
			Type:          stock.MovementExit,
			Quantity:      item.Quantity,
			PreviousStock: previous,
			NewStock:      p.Stock,
			Reason:        reason,
			UserID:        s.OperatorID,
		})
	}

	entry.Description = reason
	m.saved = append(m.saved, s)
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memSales) FindByID(_ context.Context, id string) (*sale.Sale, error) {
	for _, s := range m.saved {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("venda não encontrada")
}

func (m *memSales) List(context.Context, time.Time, time.Time, int, int) ([]*sale.Sale, error) {
	return m.saved, nil
}

func (m *memSales) ListBySession(_ context.Context, sessionID string) ([]*sale.Sale, error) {
	out := make([]*sale.Sale, 0)
	for _, s := range m.saved {
		if s.SessionID == sessionID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fixture struct {
	service   *SaleService
	products  *memProducts
	registers *memRegisters
	sales     *memSales
	operator  *user.User
	session   *register.Session
}

func newFixture(t *testing.T, openRegister bool) *fixture {
	t.Helper()

	products := &memProducts{items: make(map[string]*product.Product)}
	registers := &memRegisters{sessions: make(map[string]*register.Session)}
	users := &memUsers{items: make(map[string]*user.User)}
	sales := &memSales{products: products, registers: registers}
	set := &memSettings{company: settings.Company{
		CompanyName:   "Mercadinho Boa Vista",
		Document:      "12.345.678/0001-90",
		ReceiptFooter: "Obrigado pela preferência!",
	}}

	operator, err := user.NewUser("Maria Operadora", "maria@boavista.com", "segredo1", user.RolePDV)
	if err != nil {
		t.Fatalf("criando operadora: %v", err)
	}
	users.items[operator.ID] = operator

	f := &fixture{
		service:   NewSaleService(sales, products, registers, users, set),
		products:  products,
		registers: registers,
		sales:     sales,
		operator:  operator,
	}

	if openRegister {
		session, err := register.NewSession("caixa-01", operator.ID, decimal.NewFromInt(100), decimal.Zero, decimal.Zero)
		if err != nil {
			t.Fatalf("abrindo caixa: %v", err)
		}
		if err := registers.Open(context.Background(), session); err != nil {
			t.Fatalf("abrindo caixa: %v", err)
		}
		f.session = session
	}

	return f
}

func (f *fixture) addProduct(t *testing.T, name, barcode, price string, stockQty int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, barcode, decimal.RequireFromString(price), stockQty, 2, "")
	if err != nil {
		t.Fatalf("criando produto: %v", err)
	}
	f.products.items[p.ID] = p
	return p
}

func TestFinalizeSaleDecrementaEstoqueECalculaTotal(t *testing.T) {
	f := newFixture(t, true)
	p := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)

	cart := []sale.CartItem{{ProductID: p.ID, Quantity: 3}}
	s, receipt, err := f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")
	if err != nil {
		t.Fatalf("esperava venda finalizada, veio erro: %v", err)
	}

	if !s.Total.Equal(decimal.RequireFromString("25.50")) {
		t.Errorf("total da venda = %s, esperado 25.50", s.Total)
	}
	if p.Stock != 7 {
		t.Errorf("estoque após a venda = %d, esperado 7", p.Stock)
	}
	if s.Number != 1 {
		t.Errorf("número do cupom = %d, esperado 1", s.Number)
	}
	if s.SessionID != f.session.ID {
		t.Errorf("venda associada à sessão %q, esperado %q", s.SessionID, f.session.ID)
	}
	if s.Status != sale.StatusFinalized {
		t.Errorf("status da venda = %q, esperado %q", s.Status, sale.StatusFinalized)
	}

	if receipt == nil {
		t.Fatal("cupom não foi emitido")
	}
	if receipt.Number != 1 {
		t.Errorf("número do cupom = %d, esperado 1", receipt.Number)
	}
	if receipt.CompanyName != "Mercadinho Boa Vista" {
		t.Errorf("cabeçalho do cupom = %q", receipt.CompanyName)
	}
	if receipt.OperatorName != "Maria Operadora" {
		t.Errorf("operadora no cupom = %q", receipt.OperatorName)
	}
	if receipt.Footer != "Obrigado pela preferência!" {
		t.Errorf("rodapé do cupom = %q", receipt.Footer)
	}
}

func TestFinalizeSaleRegistraExatamenteUmLancamentoEUmMovimentoPorItem(t *testing.T) {
	f := newFixture(t, true)
	arroz := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)
	feijao := f.addProduct(t, "Feijão 1kg", "7899876543210", "6.00", 5)

	cart := []sale.CartItem{
		{ProductID: arroz.ID, Quantity: 2},
		{ProductID: feijao.ID, Quantity: 1},
	}
	s, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentPix, f.operator.ID, "caixa-01")
	if err != nil {
		t.Fatalf("esperava venda finalizada, veio erro: %v", err)
	}

	if len(f.sales.entries) != 1 {
		t.Fatalf("lançamentos no fluxo de caixa = %d, esperado 1", len(f.sales.entries))
	}
	entry := f.sales.entries[0]
	if entry.Type != cashflow.TypeIncome {
		t.Errorf("tipo do lançamento = %q, esperado entrada", entry.Type)
	}
	if !entry.Amount.Equal(decimal.RequireFromString("23.00")) {
		t.Errorf("valor do lançamento = %s, esperado 23.00", entry.Amount)
	}
	if entry.Category != CashFlowSaleCategory {
		t.Errorf("categoria do lançamento = %q, esperado %q", entry.Category, CashFlowSaleCategory)
	}
	if entry.Status != cashflow.StatusPaid {
		t.Errorf("status do lançamento = %q, esperado pago", entry.Status)
	}
	if entry.Account != settings.DefaultAccount {
		t.Errorf("conta do lançamento = %q, esperado %q", entry.Account, settings.DefaultAccount)
	}
	if entry.Description != fmt.Sprintf("Venda %06d", s.Number) {
		t.Errorf("descrição do lançamento = %q", entry.Description)
	}

	if len(f.sales.movements) != 2 {
		t.Fatalf("movimentos de estoque = %d, esperado 2 (um por item)", len(f.sales.movements))
	}
	first := f.sales.movements[0]
	if first.Type != stock.MovementExit {
		t.Errorf("tipo do movimento = %q, esperado saida", first.Type)
	}
	if first.PreviousStock != 10 || first.NewStock != 8 {
		t.Errorf("movimento registrou %d -> %d, esperado 10 -> 8", first.PreviousStock, first.NewStock)
	}
}

func TestFinalizeSaleComEstoqueInsuficienteNadaGrava(t *testing.T) {
	f := newFixture(t, true)
	arroz := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)
	feijao := f.addProduct(t, "Feijão 1kg", "7899876543210", "6.00", 2)

	cart := []sale.CartItem{
		{ProductID: arroz.ID, Quantity: 2},
		{ProductID: feijao.ID, Quantity: 5},
	}
	_, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")

	var insufficient *sale.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("esperava InsufficientStockError, veio: %v", err)
	}
	if insufficient.ProductName != "Feijão 1kg" {
		t.Errorf("erro aponta produto %q, esperado Feijão 1kg", insufficient.ProductName)
	}

	if arroz.Stock != 10 || feijao.Stock != 2 {
		t.Errorf("estoques alterados para %d/%d, esperado 10/2 intactos", arroz.Stock, feijao.Stock)
	}
	if len(f.sales.saved) != 0 || len(f.sales.entries) != 0 || len(f.sales.movements) != 0 {
		t.Error("venda com estoque insuficiente deixou efeitos gravados")
	}
	if f.session.LastReceiptNumber != 0 {
		t.Errorf("contador de cupom avançou para %d em venda rejeitada", f.session.LastReceiptNumber)
	}
}

func TestFinalizeSaleComCaixaFechado(t *testing.T) {
	f := newFixture(t, false)
	p := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)

	cart := []sale.CartItem{{ProductID: p.ID, Quantity: 1}}
	_, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")

	if !errors.Is(err, sale.ErrRegisterClosed) {
		t.Fatalf("esperava ErrRegisterClosed, veio: %v", err)
	}
	if p.Stock != 10 {
		t.Errorf("estoque alterado para %d com caixa fechado", p.Stock)
	}
	if len(f.sales.saved) != 0 {
		t.Error("venda gravada com caixa fechado")
	}
}

func TestFinalizeSaleValidaCarrinho(t *testing.T) {
	f := newFixture(t, true)
	p := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)

	_, _, err := f.service.Finalize(context.Background(), nil, sale.PaymentCash, f.operator.ID, "caixa-01")
	if !errors.Is(err, sale.ErrEmptyCart) {
		t.Errorf("carrinho vazio: esperava ErrEmptyCart, veio %v", err)
	}

	cart := []sale.CartItem{{ProductID: p.ID, Quantity: 0}}
	_, _, err = f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")
	if !errors.Is(err, sale.ErrInvalidQuantity) {
		t.Errorf("quantidade zero: esperava ErrInvalidQuantity, veio %v", err)
	}

	cart = []sale.CartItem{{ProductID: p.ID, Quantity: 1}}
	_, _, err = f.service.Finalize(context.Background(), cart, sale.PaymentMethod("cheque"), f.operator.ID, "caixa-01")
	if !errors.Is(err, sale.ErrInvalidPaymentMethod) {
		t.Errorf("forma de pagamento inválida: esperava ErrInvalidPaymentMethod, veio %v", err)
	}
}

func TestFinalizeSaleNumeraCuponsSequencialmente(t *testing.T) {
	f := newFixture(t, true)
	p := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)

	cart := []sale.CartItem{{ProductID: p.ID, Quantity: 2}}

	first, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")
	if err != nil {
		t.Fatalf("primeira venda: %v", err)
	}
	second, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentDebitCard, f.operator.ID, "caixa-01")
	if err != nil {
		t.Fatalf("segunda venda: %v", err)
	}

	if first.Number != 1 || second.Number != 2 {
		t.Errorf("cupons numerados %d e %d, esperado 1 e 2", first.Number, second.Number)
	}
	if p.Stock != 6 {
		t.Errorf("estoque após duas vendas = %d, esperado 6", p.Stock)
	}
	if len(f.sales.saved) != 2 {
		t.Errorf("vendas gravadas = %d, esperado 2", len(f.sales.saved))
	}
}

func TestFinalizeSaleFalhaDeGravacao(t *testing.T) {
	f := newFixture(t, true)
	p := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)
	f.sales.failWith = errors.New("conexão recusada")

	cart := []sale.CartItem{{ProductID: p.ID, Quantity: 1}}
	_, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")

	if !errors.Is(err, sale.ErrPersistenceFailure) {
		t.Fatalf("esperava ErrPersistenceFailure, veio: %v", err)
	}
}

func TestReceiptForSaleReimprimeCupom(t *testing.T) {
	f := newFixture(t, true)
	p := f.addProduct(t, "Arroz 5kg", "7891234567890", "8.50", 10)

	cart := []sale.CartItem{{ProductID: p.ID, Quantity: 3}}
	s, _, err := f.service.Finalize(context.Background(), cart, sale.PaymentCash, f.operator.ID, "caixa-01")
	if err != nil {
		t.Fatalf("finalizando venda: %v", err)
	}

	receipt, err := f.service.ReceiptForSale(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("reimprimindo cupom: %v", err)
	}
	if receipt.Number != s.Number {
		t.Errorf("cupom reimpresso com número %d, esperado %d", receipt.Number, s.Number)
	}
	if !receipt.Total.Equal(s.Total) {
		t.Errorf("cupom reimpresso com total %s, esperado %s", receipt.Total, s.Total)
	}
}
