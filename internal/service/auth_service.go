package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
)

// TokenIssuer emite tokens de acesso para uma conta
type TokenIssuer interface {
	GenerateToken(a *account.Account) (string, time.Time, error)
}

// SignupInput contém os campos do formulário de cadastro
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult é o resultado de um cadastro ou login bem-sucedido
type AuthResult struct {
	Account     *account.Account
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService cadastra e autentica lojistas
type AuthService struct {
	*base
	tokens TokenIssuer
}

// Signup cria uma conta no plano Free e já retorna o token de acesso
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	now := s.Now()
	a, err := account.NewAccount(in.Name, in.Email, in.Password, in.ConfirmPassword, now)
	if err != nil {
		return nil, err
	}

	exists, err := s.Store.Accounts().ExistsByEmail(ctx, a.Email)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar email: %w", err)
	}
	if exists {
		return nil, account.ErrDuplicateEmail
	}

	a.RegisterLogin(now)
	if err := s.Store.Accounts().Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Info("conta criada", "account_id", a.ID, "plan", a.Plan)
	return s.issue(a)
}

// Login confere as credenciais e registra a data do acesso
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := account.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	a, err := s.Store.Accounts().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("erro ao buscar conta: %w", err)
	}
	if !a.CheckPassword(password) {
		s.Logger.Warn("tentativa de login com senha incorreta", "account_id", a.ID)
		return nil, account.ErrInvalidCredentials
	}

	a.RegisterLogin(s.Now())
	if err := s.Store.Accounts().Update(ctx, a); err != nil {
		return nil, fmt.Errorf("erro ao registrar login: %w", err)
	}
	return s.issue(a)
}

func (s *AuthService) issue(a *account.Account) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateToken(a)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token: %w", err)
	}
	return &AuthResult{Account: a, AccessToken: token, ExpiresAt: expiresAt}, nil
}
