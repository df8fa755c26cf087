package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterPlanRoutes registra a tabela de planos, que é pública
func RegisterPlanRoutes(r *gin.RouterGroup, accountController *controller.AccountController) {
	r.GET("/plans", accountController.Plans)
}

// RegisterAccountRoutes registra as rotas da conta autenticada
func RegisterAccountRoutes(r *gin.RouterGroup, accountController *controller.AccountController) {
	accountRouter := r.Group("/account")
	{
		accountRouter.GET("", accountController.Get)
		accountRouter.PUT("/plan", accountController.ChangePlan)
	}
}
