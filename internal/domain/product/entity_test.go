package product

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	t.Run("calcula o lucro unitário", func(t *testing.T) {
		p, err := NewProduct("acc", " Camiseta Básica ", "Vestuário", 50, dec("15"), dec("35"), now)
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Camiseta Básica", p.Name)
		assert.True(t, p.Profit.Equal(dec("20")))
		assert.Equal(t, now, p.CreatedAt)
	})

	t.Run("rejeita campos obrigatórios vazios", func(t *testing.T) {
		_, err := NewProduct("acc", "", "Vestuário", 1, dec("1"), dec("2"), now)
		assert.ErrorIs(t, err, ErrEmptyName)

		_, err = NewProduct("acc", "Boné", "  ", 1, dec("1"), dec("2"), now)
		assert.ErrorIs(t, err, ErrEmptyCategory)
	})

	t.Run("rejeita valores negativos", func(t *testing.T) {
		_, err := NewProduct("acc", "Boné", "Acessórios", -1, dec("1"), dec("2"), now)
		assert.ErrorIs(t, err, ErrNegativeQuantity)

		_, err = NewProduct("acc", "Boné", "Acessórios", 1, dec("-1"), dec("2"), now)
		assert.ErrorIs(t, err, ErrNegativePrice)
	})
}

func TestUpdateKeepsIdentity(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	p, err := NewProduct("acc", "Calça Jeans", "Vestuário", 30, dec("45"), dec("120"), created)
	require.NoError(t, err)
	id := p.ID

	edited := created.Add(48 * time.Hour)
	require.NoError(t, p.Update("Calça Slim", "Moda", 12, dec("50"), dec("110"), edited))

	assert.Equal(t, id, p.ID)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, edited, p.UpdatedAt)
	assert.Equal(t, "Calça Slim", p.Name)
	assert.Equal(t, "Moda", p.Category)
	assert.Equal(t, 12, p.Quantity)
	assert.True(t, p.Profit.Equal(dec("60")))
}

func TestDecrease(t *testing.T) {
	now := time.Now()
	p, err := NewProduct("acc", "Tênis Esportivo", "Calçados", 10, dec("80"), dec("200"), now)
	require.NoError(t, err)

	t.Run("baixa exatamente a quantidade vendida", func(t *testing.T) {
		require.NoError(t, p.Decrease(3, now))
		assert.Equal(t, 7, p.Quantity)
	})

	t.Run("permite vender todo o estoque", func(t *testing.T) {
		require.NoError(t, p.Decrease(7, now))
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("rejeita quantidade maior que o estoque sem alterar o produto", func(t *testing.T) {
		err := p.Decrease(1, now)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("rejeita quantidade zero", func(t *testing.T) {
		assert.ErrorIs(t, p.Decrease(0, now), ErrInvalidQuantity)
	})
}

func TestStockFigures(t *testing.T) {
	p, err := NewProduct("acc", "Camiseta", "Vestuário", 50, dec("15"), dec("35"), time.Now())
	require.NoError(t, err)

	assert.True(t, p.StockValue().Equal(dec("750")))
	assert.True(t, p.PotentialProfit().Equal(dec("1000")))
}

func TestMatches(t *testing.T) {
	p, err := NewProduct("acc", "Camiseta Básica", "Vestuário", 1, dec("1"), dec("2"), time.Now())
	require.NoError(t, err)

	assert.True(t, p.Matches(""))
	assert.True(t, p.Matches("CAMISETA"))
	assert.True(t, p.Matches("vest"))
	assert.False(t, p.Matches("tênis"))
}
