package sale

import (
	"testing"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct("acc", "Camiseta Básica", "Vestuário", 10,
		decimal.NewFromInt(15), decimal.NewFromInt(35), time.Now())
	require.NoError(t, err)
	return p
}

func TestNewSale(t *testing.T) {
	p := newProduct(t)
	c, err := customer.NewCustomer("acc", "João Silva", "119", "Rua", "", time.Now())
	require.NoError(t, err)

	date := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	s, err := NewSale(p, c, 3, Seller{ID: "acc", Name: OwnerSellerName}, date)
	require.NoError(t, err)

	assert.Equal(t, "acc", s.AccountID)
	assert.Equal(t, p.ID, s.ProductID)
	assert.Equal(t, "Camiseta Básica", s.ProductName)
	assert.Equal(t, c.ID, s.CustomerID)
	assert.True(t, s.HasCustomer())
	assert.True(t, s.UnitPrice.Equal(decimal.NewFromInt(35)))
	assert.True(t, s.TotalPrice.Equal(decimal.NewFromInt(105)))
	assert.True(t, s.Profit.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "Proprietário", s.SellerName)
	assert.Equal(t, 10, p.Quantity, "montar a venda não baixa o estoque")
}

func TestNewSaleSnapshotIsFrozen(t *testing.T) {
	p := newProduct(t)
	s, err := NewSale(p, nil, 2, Seller{ID: "acc", Name: OwnerSellerName}, time.Now())
	require.NoError(t, err)

	require.NoError(t, p.Update("Camiseta Premium", "Vestuário", 10, decimal.NewFromInt(20), decimal.NewFromInt(50), time.Now()))

	assert.Equal(t, "Camiseta Básica", s.ProductName)
	assert.True(t, s.TotalPrice.Equal(decimal.NewFromInt(70)))
	assert.False(t, s.HasCustomer())
}

func TestNewSaleValidation(t *testing.T) {
	_, err := NewSale(nil, nil, 1, Seller{}, time.Now())
	assert.ErrorIs(t, err, ErrNilProduct)

	_, err = NewSale(newProduct(t), nil, 0, Seller{}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestMatches(t *testing.T) {
	s := &Sale{ProductName: "Calça Jeans", CustomerName: "Maria Santos"}
	assert.True(t, s.Matches("jeans"))
	assert.True(t, s.Matches("MARIA"))
	assert.False(t, s.Matches("tênis"))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2024, 3, 5, 23, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc), StartOfDay(ts))
}
