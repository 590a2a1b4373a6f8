package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	"github.com/lucasferr/pdv-varejo/internal/adapter/repository"
	productdomain "github.com/lucasferr/pdv-varejo/internal/domain/product"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, req.Barcode, req.Price, req.Stock, req.MinStock, req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	p.CostPrice = req.CostPrice
	p.Description = req.Description
	p.ExpiryDate = req.ExpiryDate
	p.ManufactureDate = req.ManufactureDate
	p.InvoiceNumber = req.InvoiceNumber

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// GetByBarcode retorna um produto ativo pelo código de barras
// @Summary Buscar produto por código de barras
// @Description Retorna um produto ativo pelo código de barras (leitura no PDV)
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param barcode path string true "Código de barras"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/barcode/{barcode} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	barcode := ctx.Param("barcode")

	p, err := c.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto por código de barras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos com paginação e busca opcional
// @Summary Listar produtos
// @Description Lista produtos com paginação; aceita termo de busca por nome ou código de barras
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param size query int false "Itens por página"
// @Param q query string false "Termo de busca"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	var products []*productdomain.Product
	var err error

	if term := ctx.Query("q"); term != "" {
		products, err = c.productRepo.Search(ctx, term, pagination.PageSize, pagination.Offset())
	} else {
		products, err = c.productRepo.List(ctx, pagination.PageSize, pagination.Offset())
	}
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	total, err := c.productRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// ListLowStock lista os produtos com estoque igual ou abaixo do mínimo
// @Summary Listar produtos com estoque baixo
// @Description Lista os produtos ativos com estoque igual ou abaixo do mínimo configurado
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) ListLowStock(ctx *gin.Context) {
	products, err := c.productRepo.FindLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar produtos com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	items := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		items[i] = *dto.ToProductResponse(p)
	}
	ctx.JSON(http.StatusOK, items)
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	if err := p.Update(req.Name, req.Barcode, req.Price, req.CostPrice, req.MinStock, req.CategoryID, req.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}
	p.ExpiryDate = req.ExpiryDate
	p.ManufactureDate = req.ManufactureDate
	p.InvoiceNumber = req.InvoiceNumber

	if err := c.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// UpdateActive ativa ou desativa um produto
// @Summary Ativar/desativar produto
// @Description Atualiza o status ativo de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/active [patch]
func (c *ProductController) UpdateActive(ctx *gin.Context) {
	id := ctx.Param("id")

	var req struct {
		Active bool `json:"active"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.productRepo.UpdateActive(ctx, id, req.Active); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar status do produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("status do produto atualizado", nil))
}

// Delete remove um produto
// @Summary Excluir produto
// @Description Remove um produto do catálogo
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		if errors.Is(err, repository.ErrProductInUse) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "produto possui movimentações: desative-o em vez de excluir", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto excluído", nil))
}
