package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/domain/checkout"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// CheckoutRecorder contabiliza as tentativas de checkout
type CheckoutRecorder interface {
	RecordCheckout(result string)
}

// CheckoutController inicia o checkout hospedado do plano Pro
type CheckoutController struct {
	provider checkout.Provider
	baseURL  string
	recorder CheckoutRecorder
	logger   logger.Logger
}

// NewCheckoutController cria uma nova instância de CheckoutController.
// baseURL é usada quando a requisição não traz o cabeçalho Origin.
func NewCheckoutController(provider checkout.Provider, baseURL string, recorder CheckoutRecorder, logger logger.Logger) *CheckoutController {
	return &CheckoutController{
		provider: provider,
		baseURL:  baseURL,
		recorder: recorder,
		logger:   logger,
	}
}

// CreateSession cria a sessão de checkout da assinatura
// @Summary Criar sessão de checkout
// @Description Cria uma sessão de assinatura no Stripe e retorna o ID e a URL de pagamento
// @Tags checkout
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Preço e produto"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 500 {object} dto.CheckoutErrorResponse
// @Router /create-checkout-session [post]
func (c *CheckoutController) CreateSession(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, err)
		return
	}

	origin := ctx.GetHeader("Origin")
	if origin == "" {
		origin = c.baseURL
	}

	request, err := checkout.NewRequest(req.PriceID, req.ProductID, origin)
	if err != nil {
		c.fail(ctx, err)
		return
	}

	session, err := c.provider.CreateSession(ctx, request)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	if session == nil || session.URL == "" {
		c.fail(ctx, checkout.ErrMissingSessionURL)
		return
	}

	c.recorder.RecordCheckout("created")
	ctx.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// Success confirma o retorno do checkout
// @Summary Retorno do checkout
// @Tags checkout
// @Produce json
// @Param session_id query string true "ID da sessão"
// @Success 200 {object} dto.CheckoutSuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/checkout/success [get]
func (c *CheckoutController) Success(ctx *gin.Context) {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "session_id não informado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.CheckoutSuccessResponse{
		Message:   "Pagamento realizado com sucesso!",
		SessionID: sessionID,
	})
}

func (c *CheckoutController) fail(ctx *gin.Context, err error) {
	c.recorder.RecordCheckout("failed")
	c.logger.Error("erro ao criar sessão de checkout", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.CheckoutErrorResponse{Error: err.Error()})
}
