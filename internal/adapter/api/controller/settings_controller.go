package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	settingsdomain "github.com/lucasferr/pdv-varejo/internal/domain/settings"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// SettingsController gerencia as configurações da empresa
type SettingsController struct {
	settingsRepo settingsdomain.Repository
	logger       logger.Logger
}

// NewSettingsController cria uma nova instância de SettingsController
func NewSettingsController(settingsRepo settingsdomain.Repository, logger logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get retorna as configurações da empresa
// @Summary Buscar configurações
// @Description Retorna os dados da empresa usados no cupom e no fluxo de caixa
// @Tags settings
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	company, err := c.settingsRepo.Get(ctx)
	if err != nil {
		c.logger.Error("erro ao buscar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(company))
}

// Update atualiza as configurações da empresa
// @Summary Atualizar configurações
// @Description Atualiza os dados da empresa (registro único)
// @Tags settings
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param settings body dto.SettingsRequest true "Dados da empresa"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	company := &settingsdomain.Company{
		CompanyName:    req.CompanyName,
		Document:       req.Document,
		Address:        req.Address,
		Phone:          req.Phone,
		DefaultAccount: req.DefaultAccount,
		ReceiptFooter:  req.ReceiptFooter,
	}

	if err := c.settingsRepo.Save(ctx, company); err != nil {
		c.logger.Error("erro ao salvar configurações", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar configurações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(company))
}
