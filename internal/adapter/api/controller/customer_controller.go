package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customers *service.CustomerService
	logger    logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customers *service.CustomerService, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customers: customers,
		logger:    logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cadastra um cliente sem histórico de compras
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	customer, err := c.customers.Create(ctx, auth.GetAccountID(ctx), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar cliente", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	customer, err := c.customers.Get(ctx, auth.GetAccountID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Lista os clientes filtrando por nome, telefone ou CPF
// @Tags customers
// @Produce json
// @Security Bearer
// @Param search query string false "Termo de busca"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customers.List(ctx, auth.GetAccountID(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar clientes", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Tags customers
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	customer, err := c.customers.Update(ctx, auth.GetAccountID(ctx), ctx.Param("id"), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Description Remove o cliente. As vendas já registradas são mantidas.
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	if err := c.customers.Delete(ctx, auth.GetAccountID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao excluir cliente", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente excluído com sucesso", nil))
}

// Purchases retorna o histórico de compras do cliente
// @Summary Histórico de compras
// @Tags customers
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SaleListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id}/purchases [get]
func (c *CustomerController) Purchases(ctx *gin.Context) {
	sales, err := c.customers.Purchases(ctx, auth.GetAccountID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar histórico de compras", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}
