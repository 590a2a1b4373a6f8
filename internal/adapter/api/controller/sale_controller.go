package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	"github.com/lucasferr/pdv-varejo/internal/adapter/repository"
	saledomain "github.com/lucasferr/pdv-varejo/internal/domain/sale"
	"github.com/lucasferr/pdv-varejo/internal/service"
	"github.com/lucasferr/pdv-varejo/pkg/auth"
	"github.com/lucasferr/pdv-varejo/pkg/cupom"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas no PDV
type SaleController struct {
	saleService *service.SaleService
	logger      logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleService *service.SaleService, logger logger.Logger) *SaleController {
	return &SaleController{
		saleService: saleService,
		logger:      logger,
	}
}

// Finalize finaliza uma venda no PDV
// @Summary Finalizar venda
// @Description Finaliza uma venda: valida caixa e estoque, grava todos os efeitos atomicamente e retorna o cupom
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Carrinho e forma de pagamento"
// @Success 201 {object} dto.SaleFinalizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Finalize(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	operatorID, _, _, _ := auth.GetCurrentUser(ctx)

	s, receipt, err := c.saleService.Finalize(ctx, dto.ToCartItems(req.Items),
		saledomain.PaymentMethod(req.PaymentMethod), operatorID, req.TerminalID)
	if err != nil {
		c.respondFinalizeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SaleFinalizeResponse{
		Sale:    *dto.ToSaleResponse(s),
		Receipt: cupom.Render(receipt),
	})
}

// respondFinalizeError traduz os erros da finalização para códigos HTTP
func (c *SaleController) respondFinalizeError(ctx *gin.Context, err error) {
	var insufficient *saledomain.InsufficientStockError

	switch {
	case errors.As(err, &insufficient):
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "estoque insuficiente", insufficient.Error()))
	case errors.Is(err, saledomain.ErrRegisterClosed):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "caixa fechado", err.Error()))
	case errors.Is(err, saledomain.ErrEmptyCart),
		errors.Is(err, saledomain.ErrInvalidQuantity),
		errors.Is(err, saledomain.ErrInvalidPaymentMethod):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "venda inválida", err.Error()))
	default:
		c.logger.Error("erro ao finalizar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao finalizar venda", err.Error()))
	}
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna uma venda com seus itens
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	receipt, err := c.saleService.ReceiptForSale(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"receipt": cupom.Render(receipt)})
}

// List lista as vendas por período
// @Summary Listar vendas
// @Description Lista as vendas de um período, mais recentes primeiro
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (RFC3339)"
// @Param to query string false "Data final (RFC3339)"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	from, to := parsePeriod(ctx)

	sales, err := c.saleService.List(ctx, from, to, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, pagination.Page, pagination.PageSize))
}

// parsePeriod lê o período da query string, com padrão de 30 dias até agora
func parsePeriod(ctx *gin.Context) (time.Time, time.Time) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if s := ctx.Query("from"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			from = t
		}
	}
	if s := ctx.Query("to"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			to = t
		}
	}
	return from, to
}
