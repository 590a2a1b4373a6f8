package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	"github.com/lucasferr/pdv-varejo/internal/adapter/repository"
	stockdomain "github.com/lucasferr/pdv-varejo/internal/domain/stock"
	"github.com/lucasferr/pdv-varejo/internal/service"
	"github.com/lucasferr/pdv-varejo/pkg/auth"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// StockController gerencia as requisições relacionadas a estoque
type StockController struct {
	stockService *service.StockService
	logger       logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(stockService *service.StockService, logger logger.Logger) *StockController {
	return &StockController{
		stockService: stockService,
		logger:       logger,
	}
}

// Adjust aplica um ajuste manual de estoque
// @Summary Ajustar estoque
// @Description Aplica um ajuste manual de estoque em um produto; o resultado nunca fica negativo
// @Tags stock
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param adjustment body dto.StockAdjustmentRequest true "Delta e motivo"
// @Success 200 {object} dto.StockMovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [post]
func (c *StockController) Adjust(ctx *gin.Context) {
	productID := ctx.Param("id")

	var req dto.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _, _, _ := auth.GetCurrentUser(ctx)

	movement, err := c.stockService.Adjust(ctx, productID, req.Delta, req.Reason, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		case errors.Is(err, stockdomain.ErrEmptyReason), errors.Is(err, stockdomain.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ajuste inválido", err.Error()))
		default:
			c.logger.Error("erro ao ajustar estoque", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ajustar estoque", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockMovementResponse(movement))
}

// History lista os movimentos de estoque de um produto
// @Summary Histórico de estoque do produto
// @Description Lista os movimentos de estoque de um produto, mais recentes primeiro
// @Tags stock
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {array} dto.StockMovementResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/stock [get]
func (c *StockController) History(ctx *gin.Context) {
	productID := ctx.Param("id")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	movements, err := c.stockService.History(ctx, productID, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar movimentos de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockMovementListResponse(movements))
}

// List lista os movimentos de estoque de todos os produtos
// @Summary Listar movimentos de estoque
// @Description Lista os movimentos de estoque de todos os produtos, mais recentes primeiro
// @Tags stock
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {array} dto.StockMovementResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/movements [get]
func (c *StockController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	movements, err := c.stockService.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar movimentos de estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar movimentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockMovementListResponse(movements))
}
