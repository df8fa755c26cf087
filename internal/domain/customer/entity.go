package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("cliente não encontrado")
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyPhone    = errors.New("telefone não pode ser vazio")
	ErrEmptyAddress  = errors.New("endereço não pode ser vazio")
	ErrInvalidAmount = errors.New("valor da compra não pode ser negativo")
)

// Customer representa um cliente da loja
type Customer struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	CPF            string          `json:"cpf"`              // Opcional
	TotalSpent     decimal.Decimal `json:"total_spent"`      // Total gasto na loja
	LastPurchaseAt *time.Time      `json:"last_purchase_at"` // Data da Última Compra
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewCustomer cria um novo cliente sem histórico de compras
func NewCustomer(accountID, name, phone, address, cpf string, now time.Time) (*Customer, error) {
	c := &Customer{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		TotalSpent: decimal.Zero,
		CreatedAt:  now,
	}
	if err := c.Update(name, phone, address, cpf, now); err != nil {
		return nil, err
	}
	return c, nil
}

// Update substitui os dados cadastrais. Total gasto e última compra não são editáveis.
func (c *Customer) Update(name, phone, address, cpf string, now time.Time) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if name == "" {
		return ErrEmptyName
	}
	if phone == "" {
		return ErrEmptyPhone
	}
	if address == "" {
		return ErrEmptyAddress
	}

	c.Name = name
	c.Phone = phone
	c.Address = address
	c.CPF = strings.TrimSpace(cpf)
	c.UpdatedAt = now
	return nil
}

// RecordPurchase soma uma venda ao total gasto pelo cliente
func (c *Customer) RecordPurchase(amount decimal.Decimal, at time.Time) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	c.TotalSpent = c.TotalSpent.Add(amount)
	if c.LastPurchaseAt == nil || at.After(*c.LastPurchaseAt) {
		purchasedAt := at
		c.LastPurchaseAt = &purchasedAt
	}
	c.UpdatedAt = at
	return nil
}

// Matches busca pelo nome (sem diferenciar maiúsculas), telefone ou CPF
func (c *Customer) Matches(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
		return true
	}
	if strings.Contains(c.Phone, term) {
		return true
	}
	return c.CPF != "" && strings.Contains(c.CPF, term)
}
