package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	registerdomain "github.com/lucasferr/pdv-varejo/internal/domain/register"
	"github.com/lucasferr/pdv-varejo/pkg/auth"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// RegisterController gerencia as requisições de abertura e fechamento de caixa
type RegisterController struct {
	registerRepo registerdomain.Repository
	logger       logger.Logger
}

// NewRegisterController cria uma nova instância de RegisterController
func NewRegisterController(registerRepo registerdomain.Repository, logger logger.Logger) *RegisterController {
	return &RegisterController{
		registerRepo: registerRepo,
		logger:       logger,
	}
}

// Open abre o caixa de um terminal
// @Summary Abrir caixa
// @Description Abre uma sessão de caixa para um terminal com os valores contados
// @Tags register
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param opening body dto.RegisterOpenRequest true "Terminal e valores de abertura"
// @Success 201 {object} dto.RegisterSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /register/open [post]
func (c *RegisterController) Open(ctx *gin.Context) {
	var req dto.RegisterOpenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	operatorID, _, _, _ := auth.GetCurrentUser(ctx)

	session, err := registerdomain.NewSession(req.TerminalID, operatorID, req.OpeningCash, req.OpeningCards, req.OpeningOther)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "abertura inválida", err.Error()))
		return
	}

	if err := c.registerRepo.Open(ctx, session); err != nil {
		if errors.Is(err, registerdomain.ErrAlreadyOpen) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "caixa já aberto", err.Error()))
			return
		}
		c.logger.Error("erro ao abrir caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao abrir caixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRegisterSessionResponse(session))
}

// Close fecha o caixa de um terminal
// @Summary Fechar caixa
// @Description Fecha a sessão aberta de um terminal com os valores contados no fechamento
// @Tags register
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param closing body dto.RegisterCloseRequest true "Terminal e valores de fechamento"
// @Success 200 {object} dto.RegisterSessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /register/close [post]
func (c *RegisterController) Close(ctx *gin.Context) {
	var req dto.RegisterCloseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	session, err := c.registerRepo.FindOpenByTerminal(ctx, req.TerminalID)
	if err != nil {
		if errors.Is(err, registerdomain.ErrNoOpenSession) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "caixa não está aberto", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar sessão de caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar caixa", err.Error()))
		return
	}

	if err := session.Close(req.ClosingCash, req.ClosingCards, req.ClosingOther, req.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fechamento inválido", err.Error()))
		return
	}

	if err := c.registerRepo.Close(ctx, session); err != nil {
		if errors.Is(err, registerdomain.ErrAlreadyClosed) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "caixa já fechado", err.Error()))
			return
		}
		c.logger.Error("erro ao fechar caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao fechar caixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegisterSessionResponse(session))
}

// Status retorna o estado do caixa de um terminal
// @Summary Estado do caixa
// @Description Informa se o caixa de um terminal está aberto e os dados da sessão
// @Tags register
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param terminal_id query string true "ID do terminal"
// @Success 200 {object} dto.RegisterStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /register/status [get]
func (c *RegisterController) Status(ctx *gin.Context) {
	terminalID := ctx.Query("terminal_id")
	if terminalID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "terminal_id não informado", ""))
		return
	}

	session, err := c.registerRepo.FindOpenByTerminal(ctx, terminalID)
	if err != nil {
		if errors.Is(err, registerdomain.ErrNoOpenSession) {
			ctx.JSON(http.StatusOK, dto.RegisterStatusResponse{Open: false})
			return
		}
		c.logger.Error("erro ao consultar caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar caixa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterStatusResponse{
		Open:    true,
		Session: dto.ToRegisterSessionResponse(session),
	})
}

// List lista as sessões de caixa por período
// @Summary Listar sessões de caixa
// @Description Lista as sessões de caixa abertas em um período, mais recentes primeiro
// @Tags register
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Data inicial (RFC3339)"
// @Param to query string false "Data final (RFC3339)"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Success 200 {array} dto.RegisterSessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /register/sessions [get]
func (c *RegisterController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))
	pagination := dto.GetPagination(page, size)

	from, to := parsePeriod(ctx)

	sessions, err := c.registerRepo.List(ctx, from, to, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar sessões de caixa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar sessões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRegisterSessionListResponse(sessions))
}
