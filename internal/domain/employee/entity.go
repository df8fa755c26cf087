package employee

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("funcionário não encontrado")
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrInvalidEmail   = errors.New("email inválido")
	ErrEmptyPassword  = errors.New("senha não pode ser vazia")
	ErrLongPassword   = errors.New("senha deve ter no máximo 72 caracteres")
	ErrDuplicateEmail = errors.New("já existe um funcionário com este email")
)

// MaxPasswordLength é o maior tamanho, em bytes, aceito pelo bcrypt
const MaxPasswordLength = 72

// Role representa a função do funcionário na loja
type Role string

// RoleSeller é a única função disponível para funcionários
const RoleSeller Role = "seller"

// Employee representa um funcionário vendedor da loja
type Employee struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Hash bcrypt, nunca serializado
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEmployee cria um novo funcionário vendedor
func NewEmployee(accountID, name, email, password string, now time.Time) (*Employee, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	e := &Employee{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Role:      RoleSeller,
		CreatedAt: now,
	}
	if err := e.Update(name, email, now); err != nil {
		return nil, err
	}
	if err := e.SetPassword(password); err != nil {
		return nil, err
	}
	return e, nil
}

// Update substitui nome e email. A senha é trocada com SetPassword ou HashPassword.
func (e *Employee) Update(name, email string, now time.Time) error {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	e.Name = name
	e.Email = email
	e.UpdatedAt = now
	return nil
}

// HashPassword valida o tamanho e gera o hash bcrypt da senha
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return "", ErrLongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}
	return string(hashedPassword), nil
}

// SetPassword configura a senha do funcionário com hash
func (e *Employee) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	e.Password = hashedPassword
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (e *Employee) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)) == nil
}

// Matches busca pelo nome ou email, sem diferenciar maiúsculas
func (e *Employee) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(e.Email, term)
}

// NormalizeEmail remove espaços e converte o email para minúsculas
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
