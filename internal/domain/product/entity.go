package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("produto não encontrado")
	ErrEmptyName         = errors.New("nome do produto não pode ser vazio")
	ErrEmptyCategory     = errors.New("categoria do produto não pode ser vazia")
	ErrNegativeQuantity  = errors.New("quantidade não pode ser negativa")
	ErrNegativePrice     = errors.New("preço não pode ser negativo")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrInsufficientStock = errors.New("Quantidade insuficiente em estoque!")
)

// Product representa um item do estoque da loja
type Product struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"` // Preço de compra
	SalePrice     decimal.Decimal `json:"sale_price"`     // Preço de venda
	Profit        decimal.Decimal `json:"profit"`         // Lucro unitário
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto calculando o lucro unitário
func NewProduct(
	accountID string,
	name string,
	category string,
	quantity int,
	purchasePrice decimal.Decimal,
	salePrice decimal.Decimal,
	now time.Time,
) (*Product, error) {
	p := &Product{
		ID:        uuid.New().String(),
		AccountID: accountID,
		CreatedAt: now,
	}
	if err := p.Update(name, category, quantity, purchasePrice, salePrice, now); err != nil {
		return nil, err
	}
	return p, nil
}

// Update substitui os campos editáveis. ID e data de criação são preservados.
func (p *Product) Update(
	name string,
	category string,
	quantity int,
	purchasePrice decimal.Decimal,
	salePrice decimal.Decimal,
	now time.Time,
) error {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if purchasePrice.IsNegative() || salePrice.IsNegative() {
		return ErrNegativePrice
	}

	p.Name = name
	p.Category = category
	p.Quantity = quantity
	p.PurchasePrice = purchasePrice
	p.SalePrice = salePrice
	p.Profit = salePrice.Sub(purchasePrice)
	p.UpdatedAt = now
	return nil
}

// Decrease baixa o estoque após uma venda
func (p *Product) Decrease(quantity int, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Quantity {
		return ErrInsufficientStock
	}

	p.Quantity -= quantity
	p.UpdatedAt = now
	return nil
}

// StockValue retorna o valor do estoque a preço de compra
func (p *Product) StockValue() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// PotentialProfit retorna o lucro caso todo o estoque seja vendido
func (p *Product) PotentialProfit() decimal.Decimal {
	return p.Profit.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Matches verifica se o termo aparece no nome ou na categoria, sem diferenciar maiúsculas
func (p *Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}
