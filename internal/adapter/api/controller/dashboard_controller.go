package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// DashboardController expõe os indicadores da loja
type DashboardController struct {
	dashboard *service.DashboardService
	logger    logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(dashboard *service.DashboardService, logger logger.Logger) *DashboardController {
	return &DashboardController{
		dashboard: dashboard,
		logger:    logger,
	}
}

// Get retorna os indicadores recalculados a partir dos dados atuais
// @Summary Dashboard
// @Description Vendas do dia, semana e mês, produtos mais vendidos, melhores clientes e consumo do plano
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	d, err := c.dashboard.Overview(ctx, auth.GetAccountID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular dashboard", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}
