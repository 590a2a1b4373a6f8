package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	cashflowdomain "github.com/lucasferr/pdv-varejo/internal/domain/cashflow"
	"github.com/lucasferr/pdv-varejo/internal/domain/settings"
	"github.com/lucasferr/pdv-varejo/pkg/auth"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// CashFlowController gerencia as requisições relacionadas ao fluxo de caixa
type CashFlowController struct {
	cashFlowRepo cashflowdomain.Repository
	settingsRepo settings.Repository
	logger       logger.Logger
}

// NewCashFlowController cria uma nova instância de CashFlowController
func NewCashFlowController(cashFlowRepo cashflowdomain.Repository, settingsRepo settings.Repository, logger logger.Logger) *CashFlowController {
	return &CashFlowController{
		cashFlowRepo: cashFlowRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Create adiciona um lançamento manual ao fluxo de caixa
// @Summary Criar lançamento
// @Description Adiciona um lançamento manual (entrada ou saída) ao fluxo de caixa
// @Tags cashflow
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param entry body dto.CashFlowEntryRequest true "Dados do lançamento"
// @Success 201 {object} dto.CashFlowEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow [post]
func (c *CashFlowController) Create(ctx *gin.Context) {
	var req dto.CashFlowEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	userID, _, _, _ := auth.GetCurrentUser(ctx)

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	status := cashflowdomain.EntryStatus(req.Status)
	if status == "" {
		status = cashflowdomain.StatusPaid
	}

	account := req.Account
	if account == "" {
		company, err := c.settingsRepo.Get(ctx)
		if err == nil {
			account = company.Account()
		} else {
			account = settings.DefaultAccount
		}
	}

	entry, err := cashflowdomain.NewEntry(cashflowdomain.EntryType(req.Type), req.Amount,
		req.Description, req.Category, account, date, status, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "lançamento inválido", err.Error()))
		return
	}
	entry.DueDate = req.DueDate
	entry.Recurring = req.Recurring
	entry.RecurrencePeriod = req.RecurrencePeriod
	entry.Notes = req.Notes

	if err := c.cashFlowRepo.Append(ctx, entry); err != nil {
		c.logger.Error("erro ao gravar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gravar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCashFlowEntryResponse(entry))
}

// List lista os lançamentos do fluxo de caixa
// @Summary Listar lançamentos
// @Description Lista os lançamentos do fluxo de caixa com filtros por período, tipo, categoria e conta
// @Tags cashflow
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (RFC3339)"
// @Param to query string false "Data final (RFC3339)"
// @Param type query string false "Tipo (entrada ou saida)"
// @Param category query string false "Categoria"
// @Param account query string false "Conta"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {object} dto.CashFlowListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow [get]
func (c *CashFlowController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	filter := parseCashFlowFilter(ctx)

	entries, err := c.cashFlowRepo.Query(ctx, filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowListResponse(entries, pagination.Page, pagination.PageSize))
}

// Balance retorna o saldo do fluxo de caixa
// @Summary Saldo do fluxo de caixa
// @Description Calcula o saldo (entradas - saídas) do conjunto filtrado; o saldo é sempre derivado, nunca armazenado
// @Tags cashflow
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (RFC3339)"
// @Param to query string false "Data final (RFC3339)"
// @Param category query string false "Categoria"
// @Param account query string false "Conta"
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cashflow/balance [get]
func (c *CashFlowController) Balance(ctx *gin.Context) {
	filter := parseCashFlowFilter(ctx)

	balance, err := c.cashFlowRepo.Balance(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao calcular saldo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular saldo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// parseCashFlowFilter lê os filtros de consulta da query string
func parseCashFlowFilter(ctx *gin.Context) cashflowdomain.Filter {
	var filter cashflowdomain.Filter

	if s := ctx.Query("from"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			filter.From = &t
		}
	}
	if s := ctx.Query("to"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			filter.To = &t
		}
	}
	filter.Type = cashflowdomain.EntryType(ctx.Query("type"))
	filter.Category = ctx.Query("category")
	filter.Account = ctx.Query("account")

	return filter
}
