package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterEmployeeRoutes registra as rotas do módulo de funcionários
func RegisterEmployeeRoutes(r *gin.RouterGroup, employeeController *controller.EmployeeController) {
	employees := r.Group("/employees")
	{
		employees.POST("", employeeController.Create)
		employees.GET("", employeeController.List)
		employees.GET("/:id", employeeController.Get)
		employees.PUT("/:id", employeeController.Update)
		employees.DELETE("/:id", employeeController.Delete)
	}
}
