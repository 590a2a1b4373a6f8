package cupom

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasferr/pdv-varejo/internal/domain/sale"
)

func sampleReceipt() *sale.Receipt {
	return &sale.Receipt{
		Number:      42,
		CompanyName: "Mercadinho Boa Vista",
		Document:    "12.345.678/0001-90",
		Address:     "Rua das Flores, 123",
		Phone:       "(11) 98765-4321",
		Items: []sale.SaleItem{
			{
				ProductID:   "p1",
				ProductName: "Arroz 5kg",
				Quantity:    3,
				UnitPrice:   decimal.RequireFromString("8.50"),
				TotalPrice:  decimal.RequireFromString("25.50"),
			},
		},
		PaymentMethod: sale.PaymentCash,
		Total:         decimal.RequireFromString("25.50"),
		OperatorName:  "Maria Operadora",
		IssuedAt:      time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local),
		Footer:        "Obrigado pela preferência!",
	}
}

func TestRenderCupomCompleto(t *testing.T) {
	text := Render(sampleReceipt())

	for _, want := range []string{
		"Mercadinho Boa Vista",
		"CNPJ: 12.345.678/0001-90",
		"CUPOM NAO FISCAL",
		"Cupom: 000042  10/03/2025 14:30",
		"Arroz 5kg",
		"3 x 8.50",
		"25.50",
		"TOTAL",
		"R$ 25.50",
		"Dinheiro",
		"Operador: Maria Operadora",
		"Obrigado pela preferência!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("cupom não contém %q:\n%s", want, text)
		}
	}
}

func TestRenderOmiteCamposVazios(t *testing.T) {
	r := sampleReceipt()
	r.CompanyName = ""
	r.Document = ""
	r.OperatorName = ""
	r.Footer = ""

	text := Render(r)

	if strings.Contains(text, "CNPJ") {
		t.Error("cupom exibe CNPJ vazio")
	}
	if strings.Contains(text, "Operador") {
		t.Error("cupom exibe operador vazio")
	}
}

func TestRenderLinhasNaoUltrapassamLargura(t *testing.T) {
	r := sampleReceipt()
	r.Items[0].ProductName = "Produto com um nome extraordinariamente longo que não cabe no cupom"

	text := Render(r)

	for _, line := range strings.Split(text, "\n") {
		if len([]rune(line)) > 40 {
			t.Errorf("linha com %d colunas: %q", len([]rune(line)), line)
		}
	}
}

func TestRenderPagamentoDesconhecidoUsaValorBruto(t *testing.T) {
	r := sampleReceipt()
	r.PaymentMethod = sale.PaymentPix

	text := Render(r)
	if !strings.Contains(text, "PIX") {
		t.Errorf("cupom não contém forma de pagamento PIX:\n%s", text)
	}
}
