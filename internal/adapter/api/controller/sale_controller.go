package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// SaleController gerencia o registro e a consulta de vendas
type SaleController struct {
	sales  *service.SaleService
	logger logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(sales *service.SaleService, logger logger.Logger) *SaleController {
	return &SaleController{
		sales:  sales,
		logger: logger,
	}
}

// Create registra uma venda
// @Summary Registrar venda
// @Description Registra a venda, baixa o estoque e atualiza o total gasto pelo cliente.
// @Description No plano Free apenas uma venda por dia é permitida.
// @Tags sales
// @Accept json
// @Produce json
// @Security Bearer
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	s, err := c.sales.Register(ctx, auth.GetAccountID(ctx), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao registrar venda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Tags sales
// @Produce json
// @Security Bearer
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	s, err := c.sales.Get(ctx, auth.GetAccountID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar venda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List retorna as vendas, mais recentes primeiro
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Security Bearer
// @Param search query string false "Produto ou cliente"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	sales, err := c.sales.List(ctx, auth.GetAccountID(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar vendas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Summary retorna os totais de vendas
// @Summary Resumo de vendas
// @Tags sales
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SalesSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /sales/summary [get]
func (c *SaleController) Summary(ctx *gin.Context) {
	summary, err := c.sales.Summary(ctx, auth.GetAccountID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular resumo de vendas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesSummaryResponse(summary))
}
