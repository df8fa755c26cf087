package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// EmployeeController gerencia os funcionários vendedores
type EmployeeController struct {
	employees *service.EmployeeService
	logger    logger.Logger
}

// NewEmployeeController cria uma nova instância de EmployeeController
func NewEmployeeController(employees *service.EmployeeService, logger logger.Logger) *EmployeeController {
	return &EmployeeController{
		employees: employees,
		logger:    logger,
	}
}

// Create cadastra um funcionário
// @Summary Criar funcionário
// @Tags employees
// @Accept json
// @Produce json
// @Security Bearer
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /employees [post]
func (c *EmployeeController) Create(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	e, err := c.employees.Create(ctx, auth.GetAccountID(ctx), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar funcionário", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEmployeeResponse(e))
}

// Get retorna um funcionário pelo ID
// @Summary Buscar funcionário
// @Tags employees
// @Produce json
// @Security Bearer
// @Param id path string true "ID do funcionário"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [get]
func (c *EmployeeController) Get(ctx *gin.Context) {
	e, err := c.employees.Get(ctx, auth.GetAccountID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar funcionário", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}

// List retorna os funcionários
// @Summary Listar funcionários
// @Tags employees
// @Produce json
// @Security Bearer
// @Param search query string false "Nome ou email"
// @Success 200 {object} dto.EmployeeListResponse
// @Router /employees [get]
func (c *EmployeeController) List(ctx *gin.Context) {
	employees, err := c.employees.List(ctx, auth.GetAccountID(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar funcionários", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// Update atualiza um funcionário
// @Summary Atualizar funcionário
// @Description Senha vazia mantém a senha atual
// @Tags employees
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do funcionário"
// @Param employee body dto.EmployeeRequest true "Dados do funcionário"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /employees/{id} [put]
func (c *EmployeeController) Update(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	e, err := c.employees.Update(ctx, auth.GetAccountID(ctx), ctx.Param("id"), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao atualizar funcionário", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmployeeResponse(e))
}

// Delete remove um funcionário
// @Summary Excluir funcionário
// @Tags employees
// @Produce json
// @Security Bearer
// @Param id path string true "ID do funcionário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /employees/{id} [delete]
func (c *EmployeeController) Delete(ctx *gin.Context) {
	if err := c.employees.Delete(ctx, auth.GetAccountID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao excluir funcionário", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("funcionário excluído com sucesso", nil))
}
