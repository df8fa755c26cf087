package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCreateFreePlan(t *testing.T) {
	cases := []struct {
		name    string
		kind    Kind
		count   int
		allowed bool
	}{
		{"primeiro produto", KindProduct, 0, true},
		{"décimo produto", KindProduct, 9, true},
		{"décimo primeiro produto", KindProduct, 10, false},
		{"primeiro funcionário", KindEmployee, 0, true},
		{"segundo funcionário", KindEmployee, 1, false},
		{"primeira venda do dia", KindSale, 0, true},
		{"segunda venda do dia", KindSale, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanCreate(TypeFree, tc.kind, tc.count)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLimitReached))

			var limitErr *LimitError
			require.True(t, errors.As(err, &limitErr))
			assert.Equal(t, tc.kind, limitErr.Kind)
			assert.Equal(t, tc.count, limitErr.Count)
		})
	}
}

func TestCanCreateProPlanIsUnlimited(t *testing.T) {
	for _, kind := range Kinds {
		assert.NoError(t, CanCreate(TypePro, kind, 1_000_000))
	}
}

func TestCanCreateRejectsUnknownValues(t *testing.T) {
	assert.ErrorIs(t, CanCreate(Type("gold"), KindProduct, 0), ErrUnknownPlan)
	assert.ErrorIs(t, CanCreate(TypeFree, Kind("branch"), 0), ErrUnknownKind)
}

func TestLimitErrorMessage(t *testing.T) {
	err := CanCreate(TypeFree, KindProduct, 10)
	assert.Equal(t, "Você atingiu o limite de 10 produtos no plano Free. Faça upgrade para o plano Pro!", err.Error())
}

func TestGetReturnsIndependentCopies(t *testing.T) {
	p, err := Get(TypeFree)
	require.NoError(t, err)
	*p.MaxProducts = 999

	again, err := Get(TypeFree)
	require.NoError(t, err)
	assert.Equal(t, 10, *again.MaxProducts)
	assert.Equal(t, "49.9", All()[1].Price.String())
}

func TestUsageFor(t *testing.T) {
	usage, err := UsageFor(TypeFree, map[Kind]int{KindProduct: 10, KindSale: 0, KindEmployee: 1})
	require.NoError(t, err)
	require.Len(t, usage, 3)

	assert.Equal(t, KindProduct, usage[0].Kind)
	assert.True(t, usage[0].Reached)
	assert.False(t, usage[1].Reached)
	assert.True(t, usage[2].Reached)

	proUsage, err := UsageFor(TypePro, map[Kind]int{KindProduct: 500})
	require.NoError(t, err)
	assert.Nil(t, proUsage[0].Limit)
	assert.False(t, proUsage[0].Reached)
}
