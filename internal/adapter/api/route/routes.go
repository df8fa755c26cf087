package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// Versão exibida no health check
const Version = "1.0.0"

// Controllers reúne os controllers expostos pela API
type Controllers struct {
	Auth      *controller.AuthController
	Account   *controller.AccountController
	Product   *controller.ProductController
	Customer  *controller.CustomerController
	Sale      *controller.SaleController
	Employee  *controller.EmployeeController
	Expense   *controller.ExpenseController
	Dashboard *controller.DashboardController
	Checkout  *controller.CheckoutController
}

// SetupRoutes configura todas as rotas da API.
// requireAuth protege as rotas da loja e limit é aplicado em cadastro, login e checkout.
func SetupRoutes(r *gin.Engine, c Controllers, requireAuth, limit gin.HandlerFunc) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": Version,
		})
	})

	api := r.Group("/api")
	v1 := api.Group("/v1")

	// Rotas públicas
	RegisterAuthRoutes(v1, c.Auth, limit, requireAuth)
	RegisterPlanRoutes(v1, c.Account)
	RegisterCheckoutRoutes(api, v1, c.Checkout, limit)

	// Rotas da loja, sempre no escopo da conta do token
	protected := v1.Group("")
	protected.Use(requireAuth)

	RegisterAccountRoutes(protected, c.Account)
	RegisterDashboardRoutes(protected, c.Dashboard)
	RegisterProductRoutes(protected, c.Product)
	RegisterCustomerRoutes(protected, c.Customer)
	RegisterSaleRoutes(protected, c.Sale)
	RegisterEmployeeRoutes(protected, c.Employee)
	RegisterExpenseRoutes(protected, c.Expense)
}
