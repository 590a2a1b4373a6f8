// Package cupom formata o cupom não fiscal em texto de largura fixa,
// pronto para impressoras térmicas de 40 colunas.
package cupom

import (
	"fmt"
	"strings"

	"github.com/lucasferr/pdv-varejo/internal/domain/sale"
)

const width = 40

// paymentLabels traduz a forma de pagamento para o texto do cupom
var paymentLabels = map[sale.PaymentMethod]string{
	sale.PaymentCash:       "Dinheiro",
	sale.PaymentDebitCard:  "Cartão de Débito",
	sale.PaymentCreditCard: "Cartão de Crédito",
	sale.PaymentPix:        "PIX",
}

// Render formata um cupom não fiscal como texto plano
func Render(r *sale.Receipt) string {
	var b strings.Builder

	divider := strings.Repeat("-", width)

	if r.CompanyName != "" {
		b.WriteString(center(r.CompanyName))
		b.WriteString("\n")
	}
	if r.Document != "" {
		b.WriteString(center("CNPJ: " + r.Document))
		b.WriteString("\n")
	}
	if r.Address != "" {
		b.WriteString(center(r.Address))
		b.WriteString("\n")
	}
	if r.Phone != "" {
		b.WriteString(center(r.Phone))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(center("CUPOM NAO FISCAL"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Cupom: %06d  %s\n", r.Number, r.IssuedAt.Format("02/01/2006 15:04")))
	b.WriteString(divider)
	b.WriteString("\n")

	for i, item := range r.Items {
		b.WriteString(fmt.Sprintf("%03d %s\n", i+1, truncate(item.ProductName, width-4)))
		line := fmt.Sprintf("  %d x %s", item.Quantity, item.UnitPrice.StringFixed(2))
		total := item.TotalPrice.StringFixed(2)
		b.WriteString(padBetween(line, total))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(padBetween("TOTAL", "R$ "+r.Total.StringFixed(2)))
	b.WriteString("\n")

	label, ok := paymentLabels[r.PaymentMethod]
	if !ok {
		label = string(r.PaymentMethod)
	}
	b.WriteString(padBetween("Pagamento", label))
	b.WriteString("\n")

	if r.OperatorName != "" {
		b.WriteString(fmt.Sprintf("Operador: %s\n", truncate(r.OperatorName, width-10)))
	}

	if r.Footer != "" {
		b.WriteString(divider)
		b.WriteString("\n")
		b.WriteString(center(r.Footer))
		b.WriteString("\n")
	}

	return b.String()
}

// center centraliza um texto na largura do cupom
func center(s string) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s
}

// padBetween alinha um texto à esquerda e outro à direita na mesma linha
func padBetween(left, right string) string {
	gap := width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// truncate corta um texto no número máximo de caracteres
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
