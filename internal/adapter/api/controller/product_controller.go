package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	products *service.ProductService
	logger   logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(products *service.ProductService, logger logger.Logger) *ProductController {
	return &ProductController{
		products: products,
		logger:   logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cadastra um produto respeitando o limite do plano
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := c.products.Create(ctx, auth.GetAccountID(ctx), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar produto", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.products.Get(ctx, auth.GetAccountID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List retorna os produtos da loja
// @Summary Listar produtos
// @Description Lista os produtos filtrando por nome ou categoria
// @Tags products
// @Produce json
// @Security Bearer
// @Param search query string false "Termo de busca"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.products.List(ctx, auth.GetAccountID(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Substitui os dados do produto e recalcula o lucro unitário
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(ctx, &req) {
		return
	}

	p, err := c.products.Update(ctx, auth.GetAccountID(ctx), ctx.Param("id"), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto
// @Summary Excluir produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.products.Delete(ctx, auth.GetAccountID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao excluir produto", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto excluído com sucesso", nil))
}

// Summary retorna o valor do estoque e o lucro potencial
// @Summary Resumo do estoque
// @Tags products
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.InventoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /products/summary [get]
func (c *ProductController) Summary(ctx *gin.Context) {
	inv, err := c.products.Summary(ctx, auth.GetAccountID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular resumo do estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}
