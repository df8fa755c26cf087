package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterDashboardRoutes registra a rota do dashboard
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController) {
	r.GET("/dashboard", dashboardController.Get)
}
