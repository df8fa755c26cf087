package expense

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 7)
	for _, c := range Categories {
		assert.True(t, c.IsValid(), c)
	}
	assert.Equal(t, "Contas (Luz, Água, Internet)", CategoryUtilities.Label())
	assert.False(t, Category("travel").IsValid())
	assert.Equal(t, "travel", Category("travel").Label())
}

func TestNewExpense(t *testing.T) {
	now := time.Now()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	e, err := NewExpense("acc", "Aluguel Janeiro", CategoryRent, decimal.NewFromInt(2500), date, "Aluguel da loja", now)
	require.NoError(t, err)
	assert.Equal(t, CategoryRent, e.Category)
	assert.Equal(t, date, e.Date)

	cases := []struct {
		name     string
		title    string
		category Category
		amount   decimal.Decimal
		date     time.Time
		desc     string
		want     error
	}{
		{"sem título", "", CategoryRent, decimal.NewFromInt(1), date, "x", ErrEmptyTitle},
		{"categoria fora da lista", "Viagem", Category("travel"), decimal.NewFromInt(1), date, "x", ErrInvalidCategory},
		{"valor zero", "Luz", CategoryUtilities, decimal.Zero, date, "x", ErrInvalidAmount},
		{"sem data", "Luz", CategoryUtilities, decimal.NewFromInt(1), time.Time{}, "x", ErrEmptyDate},
		{"sem descrição", "Luz", CategoryUtilities, decimal.NewFromInt(1), date, " ", ErrEmptyDescription},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewExpense("acc", tc.title, tc.category, tc.amount, tc.date, tc.desc, now)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMatches(t *testing.T) {
	e := &Expense{Title: "Conta de Luz", Description: "Energia elétrica"}
	assert.True(t, e.Matches("luz"))
	assert.True(t, e.Matches("ENERGIA"))
	assert.False(t, e.Matches("aluguel"))
}
