package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
)

// RegisterAuthRoutes configura as rotas de cadastro e login.
// limit é aplicado nas rotas públicas; requireAuth protege o perfil.
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController, limit, requireAuth gin.HandlerFunc) {
	authRouter := r.Group("/auth")
	{
		authRouter.POST("/signup", limit, authController.Signup)
		authRouter.POST("/login", limit, authController.Login)
		authRouter.GET("/me", requireAuth, authController.Me)
	}
}
