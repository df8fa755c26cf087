package sale

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("venda não encontrada")
	ErrNilProduct      = errors.New("produto da venda não informado")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
)

// OwnerSellerName é o nome exibido quando a venda é feita pelo próprio lojista
const OwnerSellerName = "Proprietário"

// Seller identifica quem realizou a venda
type Seller struct {
	ID   string
	Name string
}

// Sale representa uma venda registrada. Preços e lucro são congelados no momento da venda.
type Sale struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CustomerID   string          `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Profit       decimal.Decimal `json:"profit"`
	SellerID     string          `json:"seller_id"`
	SellerName   string          `json:"seller_name"`
	Date         time.Time       `json:"date"`
}

// NewSale monta a venda a partir do estado atual do produto.
// O cliente é opcional. Não altera o estoque do produto.
func NewSale(
	p *product.Product,
	c *customer.Customer,
	quantity int,
	seller Seller,
	date time.Time,
) (*Sale, error) {
	if p == nil {
		return nil, ErrNilProduct
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	qty := decimal.NewFromInt(int64(quantity))
	s := &Sale{
		ID:          uuid.New().String(),
		AccountID:   p.AccountID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SalePrice,
		TotalPrice:  p.SalePrice.Mul(qty),
		Profit:      p.Profit.Mul(qty),
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		Date:        date,
	}

	if c != nil {
		s.CustomerID = c.ID
		s.CustomerName = c.Name
	}
	return s, nil
}

// HasCustomer indica se a venda foi associada a um cliente
func (s *Sale) HasCustomer() bool {
	return s.CustomerID != ""
}

// Matches busca pelo nome do produto ou do cliente, sem diferenciar maiúsculas
func (s *Sale) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.ProductName), term) ||
		strings.Contains(strings.ToLower(s.CustomerName), term)
}

// StartOfDay retorna a meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
