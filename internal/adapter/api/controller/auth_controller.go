package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	auth     *service.AuthService
	accounts *service.AccountService
	logger   logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(authService *service.AuthService, accounts *service.AccountService, logger logger.Logger) *AuthController {
	return &AuthController{
		auth:     authService,
		accounts: accounts,
		logger:   logger,
	}
}

// Signup cadastra um lojista
// @Summary Cadastrar lojista
// @Description Cria uma conta no plano Free e retorna o token de acesso
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Dados do cadastro"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.auth.Signup(ctx, req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar conta", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoginResponse(result))
}

// Login autentica um lojista e retorna um token JWT
// @Summary Autentica um lojista
// @Description Verifica as credenciais e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(ctx, c.logger, "erro ao autenticar", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// Me retorna o perfil do lojista autenticado
// @Summary Perfil do lojista
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	a, err := c.accounts.Get(ctx, auth.GetAccountID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar perfil", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(a))
}
