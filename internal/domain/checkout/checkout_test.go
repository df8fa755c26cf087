package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("price_123", "prod_TRS7wtfsgEcyYI", "https://loja.example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://loja.example.com/sucesso?session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
	assert.Equal(t, "https://loja.example.com/planos", req.CancelURL)
	assert.Equal(t, "prod_TRS7wtfsgEcyYI", req.ProductID)

	_, err = NewRequest("", "prod", "https://loja.example.com")
	assert.ErrorIs(t, err, ErrMissingPriceID)

	_, err = NewRequest("price_123", "prod", "")
	assert.ErrorIs(t, err, ErrMissingURL)
}

func TestDisabledProvider(t *testing.T) {
	_, err := Disabled{}.CreateSession(context.Background(), Request{PriceID: "price"})
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}
