package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas. Vendas não são editadas nem excluídas.
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/summary", saleController.Summary)
		sales.GET("/:id", saleController.Get)
	}
}
