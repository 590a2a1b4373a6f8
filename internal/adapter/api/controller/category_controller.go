package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	"github.com/lucasferr/pdv-varejo/internal/adapter/repository"
	categorydomain "github.com/lucasferr/pdv-varejo/internal/domain/category"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo categorydomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria
// @Summary Criar categoria
// @Description Cria uma nova categoria de produtos
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := categorydomain.NewCategory(req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrCategoryDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar categoria no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// List lista as categorias
// @Summary Listar categorias
// @Description Lista todas as categorias, em ordem alfabética
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Update atualiza uma categoria
// @Summary Atualizar categoria
// @Description Atualiza o nome de uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cat, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar categoria", err.Error()))
		return
	}

	if err := cat.Rename(req.Name); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Update(ctx, cat); err != nil {
		c.logger.Error("erro ao atualizar categoria no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Delete remove uma categoria
// @Summary Excluir categoria
// @Description Remove uma categoria
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria excluída", nil))
}

// Cleanup remove categorias duplicadas
// @Summary Remover categorias duplicadas
// @Description Remove categorias com nome repetido, preservando a mais antiga e reapontando os produtos
// @Tags categories
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CategoryCleanupResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/cleanup [post]
func (c *CategoryController) Cleanup(ctx *gin.Context) {
	removed, err := c.categoryRepo.RemoveDuplicates(ctx)
	if err != nil {
		c.logger.Error("erro ao remover categorias duplicadas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover duplicadas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryCleanupResponse{Removed: removed})
}
