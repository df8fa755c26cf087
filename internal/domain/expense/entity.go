package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("despesa não encontrada")
	ErrEmptyTitle       = errors.New("título não pode ser vazio")
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidCategory  = errors.New("categoria de despesa inválida")
	ErrInvalidAmount    = errors.New("valor deve ser maior que zero")
	ErrEmptyDate        = errors.New("data da despesa não informada")
)

// Category classifica uma despesa
type Category string

const (
	CategoryMerchandise Category = "merchandise" // Mercadorias
	CategoryEmployees   Category = "employees"   // Funcionários
	CategoryRent        Category = "rent"        // Aluguel
	CategoryUtilities   Category = "utilities"   // Contas (Luz, Água, Internet)
	CategoryEssential   Category = "essential"   // Gastos Essenciais
	CategoryUnnecessary Category = "unnecessary" // Gastos Inúteis
	CategoryOther       Category = "other"       // Outros
)

// Categories lista as categorias na ordem de exibição
var Categories = []Category{
	CategoryMerchandise,
	CategoryEmployees,
	CategoryRent,
	CategoryUtilities,
	CategoryEssential,
	CategoryUnnecessary,
	CategoryOther,
}

var labels = map[Category]string{
	CategoryMerchandise: "Mercadorias",
	CategoryEmployees:   "Funcionários",
	CategoryRent:        "Aluguel",
	CategoryUtilities:   "Contas (Luz, Água, Internet)",
	CategoryEssential:   "Gastos Essenciais",
	CategoryUnnecessary: "Gastos Inúteis",
	CategoryOther:       "Outros",
}

// IsValid verifica se a categoria pertence à lista fechada
func (c Category) IsValid() bool {
	_, ok := labels[c]
	return ok
}

// Label retorna o nome da categoria em português
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// Expense representa uma despesa da loja
type Expense struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Title       string          `json:"title"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewExpense cria uma nova despesa
func NewExpense(
	accountID string,
	title string,
	category Category,
	amount decimal.Decimal,
	date time.Time,
	description string,
	now time.Time,
) (*Expense, error) {
	e := &Expense{
		ID:        uuid.New().String(),
		AccountID: accountID,
		CreatedAt: now,
	}
	if err := e.Update(title, category, amount, date, description, now); err != nil {
		return nil, err
	}
	return e, nil
}

// Update substitui os campos editáveis da despesa
func (e *Expense) Update(
	title string,
	category Category,
	amount decimal.Decimal,
	date time.Time,
	description string,
	now time.Time,
) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return ErrEmptyTitle
	}
	if !category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if date.IsZero() {
		return ErrEmptyDate
	}
	if description == "" {
		return ErrEmptyDescription
	}

	e.Title = title
	e.Category = category
	e.Amount = amount
	e.Date = date
	e.Description = description
	e.UpdatedAt = now
	return nil
}

// Matches busca pelo título ou descrição, sem diferenciar maiúsculas
func (e *Expense) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term)
}
