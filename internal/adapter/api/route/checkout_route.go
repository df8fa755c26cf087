package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterCheckoutRoutes registra o início do checkout em /api e o retorno em /api/v1
func RegisterCheckoutRoutes(api, v1 *gin.RouterGroup, checkoutController *controller.CheckoutController, limit gin.HandlerFunc) {
	api.POST("/create-checkout-session", limit, checkoutController.CreateSession)
	v1.GET("/checkout/success", checkoutController.Success)
}
