package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// ExpenseController gerencia as despesas da loja
type ExpenseController struct {
	expenses *service.ExpenseService
	logger   logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenses *service.ExpenseService, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenses: expenses,
		logger:   logger,
	}
}

func (c *ExpenseController) bind(ctx *gin.Context) (service.ExpenseInput, bool) {
	var req dto.ExpenseRequest
	if !bindJSON(ctx, &req) {
		return service.ExpenseInput{}, false
	}

	in, err := req.ToInput(time.Local)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return service.ExpenseInput{}, false
	}
	return in, true
}

// Create registra uma despesa
// @Summary Criar despesa
// @Description Categorias: merchandise, employees, rent, utilities, essential, unnecessary, other
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	in, ok := c.bind(ctx)
	if !ok {
		return
	}

	e, err := c.expenses.Create(ctx, auth.GetAccountID(ctx), in)
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar despesa", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// Get retorna uma despesa pelo ID
// @Summary Buscar despesa
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	e, err := c.expenses.Get(ctx, auth.GetAccountID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar despesa", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// List retorna as despesas
// @Summary Listar despesas
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param search query string false "Título ou descrição"
// @Success 200 {object} dto.ExpenseListResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	expenses, err := c.expenses.List(ctx, auth.GetAccountID(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar despesas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Update atualiza uma despesa
// @Summary Atualizar despesa
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	in, ok := c.bind(ctx)
	if !ok {
		return
	}

	e, err := c.expenses.Update(ctx, auth.GetAccountID(ctx), ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar despesa", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// Delete remove uma despesa
// @Summary Excluir despesa
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.expenses.Delete(ctx, auth.GetAccountID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao excluir despesa", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("despesa excluída com sucesso", nil))
}

// Summary retorna os totais de despesas por categoria, mês e ano
// @Summary Resumo de despesas
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Router /expenses/summary [get]
func (c *ExpenseController) Summary(ctx *gin.Context) {
	summary, err := c.expenses.Summary(ctx, auth.GetAccountID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular resumo de despesas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summary))
}
