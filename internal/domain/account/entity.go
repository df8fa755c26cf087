package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"golang.org/x/crypto/bcrypt"
)

// Mensagens exibidas no formulário de cadastro e login
var (
	ErrNotFound           = errors.New("conta não encontrada")
	ErrMissingFields      = errors.New("Por favor, preencha todos os campos")
	ErrInvalidEmail       = errors.New("Por favor, use um email Gmail válido")
	ErrShortPassword      = errors.New("A senha deve ter pelo menos 6 caracteres")
	ErrLongPassword       = errors.New("A senha deve ter no máximo 72 caracteres")
	ErrPasswordMismatch   = errors.New("As senhas não coincidem")
	ErrDuplicateEmail     = errors.New("Este email já está cadastrado")
	ErrInvalidCredentials = errors.New("Email ou senha incorretos")
)

const (
	// MinPasswordLength é o tamanho mínimo da senha do lojista
	MinPasswordLength = 6
	// MaxPasswordLength é o maior tamanho, em bytes, aceito pelo bcrypt
	MaxPasswordLength = 72

	emailDomain = "@gmail.com"
)

// Role representa o papel do usuário dono da conta
type Role string

const RoleOwner Role = "owner"

// Account representa o lojista e a assinatura da loja
type Account struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"` // O campo senha não é retornado nas respostas JSON
	Plan        plan.Type  `json:"plan"`
	Role        Role       `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidateSignup aplica as regras do formulário de cadastro
func ValidateSignup(name, email, password, confirmPassword string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		password == "" || confirmPassword == "" {
		return ErrMissingFields
	}
	if !strings.Contains(NormalizeEmail(email), emailDomain) {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return ErrShortPassword
	}
	if len(password) > MaxPasswordLength {
		return ErrLongPassword
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateLogin aplica as regras do formulário de login
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingFields
	}
	if !strings.Contains(NormalizeEmail(email), emailDomain) {
		return ErrInvalidEmail
	}
	return nil
}

// NewAccount cria uma conta no plano Free
func NewAccount(name, email, password, confirmPassword string, now time.Time) (*Account, error) {
	if err := ValidateSignup(name, email, password, confirmPassword); err != nil {
		return nil, err
	}

	a := &Account{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Plan:      plan.TypeFree,
		Role:      RoleOwner,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.SetPassword(password); err != nil {
		return nil, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}
	return a, nil
}

// SetPassword configura a senha com hash
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}

// ChangePlan troca o plano da assinatura
func (a *Account) ChangePlan(t plan.Type, now time.Time) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", plan.ErrUnknownPlan, t)
	}
	a.Plan = t
	a.UpdatedAt = now
	return nil
}

// RegisterLogin registra a data do último login
func (a *Account) RegisterLogin(now time.Time) {
	loginAt := now
	a.LastLoginAt = &loginAt
	a.UpdatedAt = now
}

// NormalizeEmail remove espaços e converte o email para minúsculas
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
