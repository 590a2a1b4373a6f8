package controller

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	registerdomain "github.com/lucasferr/pdv-varejo/internal/domain/register"
	saledomain "github.com/lucasferr/pdv-varejo/internal/domain/sale"
	userdomain "github.com/lucasferr/pdv-varejo/internal/domain/user"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// ExportController gera relatórios em CSV
type ExportController struct {
	registerRepo registerdomain.Repository
	saleRepo     saledomain.Repository
	userRepo     userdomain.Repository
	logger       logger.Logger
}

// NewExportController cria uma nova instância de ExportController
func NewExportController(registerRepo registerdomain.Repository, saleRepo saledomain.Repository, userRepo userdomain.Repository, logger logger.Logger) *ExportController {
	return &ExportController{
		registerRepo: registerRepo,
		saleRepo:     saleRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Session exporta o fechamento de uma sessão de caixa em CSV
// @Summary Exportar sessão de caixa
// @Description Gera um CSV com a abertura, o fechamento e cada item vendido na sessão
// @Tags export
// @Produce text/csv
// @Param Authorization header string true "Bearer token"
// @Param session_id query string true "ID da sessão de caixa"
// @Success 200 {string} string "CSV"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /export/caixa [get]
func (c *ExportController) Session(ctx *gin.Context) {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "session_id não informado", ""))
		return
	}

	session, err := c.registerRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, registerdomain.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "sessão de caixa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar sessão de caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar sessão", err.Error()))
		return
	}

	sales, err := c.saleRepo.ListBySession(ctx, sessionID)
	if err != nil {
		c.logger.Error("erro ao listar vendas da sessão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="caixa-%s.csv"`, session.TerminalID))
	ctx.Status(http.StatusOK)

	w := csv.NewWriter(ctx.Writer)

	const timeLayout = "02/01/2006 15:04:05"

	operators := map[string]string{}
	operatorName := func(id string) string {
		if name, ok := operators[id]; ok {
			return name
		}
		name := id
		if u, err := c.userRepo.FindByID(ctx, id); err == nil {
			name = u.Name
		}
		operators[id] = name
		return name
	}

	w.Write([]string{
		"registro", "data", "operador", "terminal", "cupom", "produto",
		"quantidade", "valor_unitario", "valor_total", "total_venda",
		"pagamento", "dinheiro_contado", "cartoes_contado", "outros_contado",
	})

	w.Write([]string{
		"abertura", session.OpenedAt.Format(timeLayout),
		operatorName(session.OperatorID), session.TerminalID,
		"", "", "", "", "", "", "",
		session.OpeningCash.StringFixed(2),
		session.OpeningCards.StringFixed(2),
		session.OpeningOther.StringFixed(2),
	})

	for _, s := range sales {
		for _, item := range s.Items {
			w.Write([]string{
				"venda",
				s.CreatedAt.Format(timeLayout),
				operatorName(s.OperatorID),
				session.TerminalID,
				fmt.Sprintf("%06d", s.Number),
				item.ProductName,
				fmt.Sprintf("%d", item.Quantity),
				item.UnitPrice.StringFixed(2),
				item.TotalPrice.StringFixed(2),
				s.Total.StringFixed(2),
				string(s.PaymentMethod),
				"", "", "",
			})
		}
	}

	if session.ClosedAt != nil {
		w.Write([]string{
			"fechamento", session.ClosedAt.Format(timeLayout),
			operatorName(session.OperatorID), session.TerminalID,
			"", "", "", "", "", "", "",
			session.ClosingCash.StringFixed(2),
			session.ClosingCards.StringFixed(2),
			session.ClosingOther.StringFixed(2),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		c.logger.Error("erro ao gerar CSV da sessão", "error", err)
	}
}
