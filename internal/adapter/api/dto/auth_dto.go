package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/service"
)

// SignupRequest representa o formulário de cadastro
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest representa os dados para login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representa o perfil do lojista autenticado
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Plan      string     `json:"plan"`
	Role      string     `json:"role"`
	LoginDate *time.Time `json:"login_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// LoginResponse representa a resposta de login ou cadastro bem-sucedido
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// ToInput converte a requisição para a entrada do serviço
func (r SignupRequest) ToInput() service.SignupInput {
	return service.SignupInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// ToUserResponse converte uma conta para o perfil público
func ToUserResponse(a *account.Account) UserResponse {
	return UserResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Plan:      string(a.Plan),
		Role:      string(a.Role),
		LoginDate: a.LastLoginAt,
		CreatedAt: a.CreatedAt,
	}
}

// ToLoginResponse converte o resultado da autenticação
func ToLoginResponse(r *service.AuthResult) LoginResponse {
	return LoginResponse{
		User:        ToUserResponse(r.Account),
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt,
	}
}
