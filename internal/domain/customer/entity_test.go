package customer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	c, err := NewCustomer("acc", "João Silva", "(11) 98765-4321", "Rua das Flores, 123", "123.456.789-00", now)
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.True(t, c.TotalSpent.IsZero())
	assert.Nil(t, c.LastPurchaseAt)

	_, err = NewCustomer("acc", "", "1", "Rua", "", now)
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = NewCustomer("acc", "Ana", "", "Rua", "", now)
	assert.ErrorIs(t, err, ErrEmptyPhone)
	_, err = NewCustomer("acc", "Ana", "119", " ", "", now)
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestUpdatePreservesPurchaseData(t *testing.T) {
	created := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	c, err := NewCustomer("acc", "Maria Santos", "(11) 91234-5678", "Av. Principal, 456", "", created)
	require.NoError(t, err)
	require.NoError(t, c.RecordPurchase(decimal.NewFromInt(240), created.Add(time.Hour)))

	id := c.ID
	require.NoError(t, c.Update("Maria S. Santos", "(11) 90000-0000", "Av. Central, 1", "987.654.321-00", created.Add(2*time.Hour)))

	assert.Equal(t, id, c.ID)
	assert.Equal(t, created, c.CreatedAt)
	assert.Equal(t, "Maria S. Santos", c.Name)
	assert.Equal(t, "987.654.321-00", c.CPF)
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(240)))
}

func TestRecordPurchase(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	c, err := NewCustomer("acc", "João Silva", "119", "Rua", "", now)
	require.NoError(t, err)

	later := now.Add(24 * time.Hour)
	require.NoError(t, c.RecordPurchase(decimal.NewFromInt(105), later))
	require.NoError(t, c.RecordPurchase(decimal.RequireFromString("10.50"), now))

	assert.Equal(t, "115.5", c.TotalSpent.String())
	require.NotNil(t, c.LastPurchaseAt)
	assert.Equal(t, later, *c.LastPurchaseAt)

	assert.ErrorIs(t, c.RecordPurchase(decimal.NewFromInt(-1), now), ErrInvalidAmount)
}

func TestMatches(t *testing.T) {
	c, err := NewCustomer("acc", "João Silva", "(11) 98765-4321", "Rua", "123.456.789-00", time.Now())
	require.NoError(t, err)

	assert.True(t, c.Matches("joão"))
	assert.True(t, c.Matches("98765"))
	assert.True(t, c.Matches("456.789"))
	assert.False(t, c.Matches("maria"))

	semCPF, err := NewCustomer("acc", "Maria", "(11) 91234-5678", "Rua", "", time.Now())
	require.NoError(t, err)
	assert.False(t, semCPF.Matches("123.456"))
}
