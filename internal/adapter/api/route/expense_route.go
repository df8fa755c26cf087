package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterExpenseRoutes registra as rotas do módulo de despesas
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenses := r.Group("/expenses")
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.List)
		expenses.GET("/summary", expenseController.Summary)
		expenses.GET("/:id", expenseController.Get)
		expenses.PUT("/:id", expenseController.Update)
		expenses.DELETE("/:id", expenseController.Delete)
	}
}
