package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// AccountController expõe os planos e a assinatura da conta
type AccountController struct {
	accounts *service.AccountService
	stripe   config.StripeConfig
	logger   logger.Logger
}

// NewAccountController cria uma nova instância de AccountController
func NewAccountController(accounts *service.AccountService, stripe config.StripeConfig, logger logger.Logger) *AccountController {
	return &AccountController{
		accounts: accounts,
		stripe:   stripe,
		logger:   logger,
	}
}

// Plans retorna a tabela de planos e os identificadores do checkout
// @Summary Listar planos
// @Tags plans
// @Produce json
// @Success 200 {object} dto.PlansResponse
// @Router /plans [get]
func (c *AccountController) Plans(ctx *gin.Context) {
	all := plan.All()
	plans := make([]dto.PlanResponse, 0, len(all))
	for _, p := range all {
		plans = append(plans, dto.ToPlanResponse(p))
	}

	ctx.JSON(http.StatusOK, dto.PlansResponse{
		Plans: plans,
		Checkout: dto.CheckoutConfigResponse{
			PublishableKey: c.stripe.PublishableKey,
			PriceID:        c.stripe.ProPriceID,
			ProductID:      c.stripe.ProProductID,
		},
	})
}

// Get retorna a conta com o plano atual e o consumo dos limites
// @Summary Dados da conta
// @Tags account
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /account [get]
func (c *AccountController) Get(ctx *gin.Context) {
	accountID := auth.GetAccountID(ctx)

	a, err := c.accounts.Get(ctx, accountID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar conta", err)
		return
	}
	c.respond(ctx, a)
}

// ChangePlan troca o plano da conta
// @Summary Trocar plano
// @Description Troca o plano da conta. Não há verificação de pagamento.
// @Tags account
// @Accept json
// @Produce json
// @Security Bearer
// @Param plan body dto.ChangePlanRequest true "Novo plano"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /account/plan [put]
func (c *AccountController) ChangePlan(ctx *gin.Context) {
	var req dto.ChangePlanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	a, err := c.accounts.ChangePlan(ctx, auth.GetAccountID(ctx), plan.Type(req.Plan))
	if err != nil {
		respondError(ctx, c.logger, "erro ao trocar plano", err)
		return
	}
	c.respond(ctx, a)
}

func (c *AccountController) respond(ctx *gin.Context, a *account.Account) {
	p, err := plan.Get(a.Plan)
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar plano", err)
		return
	}

	usage, err := c.accounts.Usage(ctx, a.ID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular consumo do plano", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(a, p, usage))
}
