package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/domain/checkout"
	"github.com/hugohenrick/lojista-x/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *StripeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	backends := &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
	return NewStripeProvider("sk_test_123", backends, logger.NewNop())
}

func TestStripeProviderCreateSession(t *testing.T) {
	var form map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)

		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	req, err := checkout.NewRequest("price_123", "prod_TRS7wtfsgEcyYI", "https://loja.exemplo.com")
	require.NoError(t, err)

	s, err := p.CreateSession(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", s.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", s.URL)

	assert.Equal(t, "subscription", form["mode"])
	assert.Equal(t, "card", form["payment_method_types[0]"])
	assert.Equal(t, "price_123", form["line_items[0][price]"])
	assert.Equal(t, "1", form["line_items[0][quantity]"])
	assert.Equal(t, "prod_TRS7wtfsgEcyYI", form["metadata[productId]"])
	assert.Equal(t, "https://loja.exemplo.com/sucesso?session_id={CHECKOUT_SESSION_ID}", form["success_url"])
	assert.Equal(t, "https://loja.exemplo.com/planos", form["cancel_url"])
}

func TestStripeProviderCreateSessionError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such price: 'price_x'"}}`))
	})

	req, err := checkout.NewRequest("price_x", "", "https://loja.exemplo.com")
	require.NoError(t, err)

	_, err = p.CreateSession(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No such price")
}

func TestNewProviderWithoutKey(t *testing.T) {
	p := NewProvider(config.StripeConfig{}, logger.NewNop())

	_, err := p.CreateSession(context.Background(), checkout.Request{PriceID: "price_123"})
	assert.ErrorIs(t, err, checkout.ErrProviderNotConfigured)
}
