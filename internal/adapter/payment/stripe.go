// Package payment integra o checkout de assinaturas com o Stripe.
package payment

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/domain/checkout"
	"github.com/hugohenrick/lojista-x/pkg/logger"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider cria sessões de checkout hospedadas no Stripe
type StripeProvider struct {
	api    *client.API
	logger logger.Logger
}

// NewProvider retorna o provedor Stripe, ou checkout.Disabled quando não há chave secreta
func NewProvider(cfg config.StripeConfig, log logger.Logger) checkout.Provider {
	if !cfg.Enabled() {
		log.Warn("STRIPE_SECRET_KEY não configurada, checkout desabilitado")
		return checkout.Disabled{}
	}

	backends := stripe.NewBackends(&http.Client{Timeout: cfg.Timeout})
	return NewStripeProvider(cfg.SecretKey, backends, log)
}

// NewStripeProvider cria o provedor com backends explícitos
func NewStripeProvider(secretKey string, backends *stripe.Backends, log logger.Logger) *StripeProvider {
	return &StripeProvider{
		api:    client.New(secretKey, backends),
		logger: log,
	}
}

// CreateSession abre uma sessão de assinatura com um único item (preço, quantidade 1)
func (p *StripeProvider) CreateSession(ctx context.Context, req checkout.Request) (*checkout.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.AddMetadata("productId", req.ProductID)
	params.Context = ctx

	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		p.logger.Error("erro ao criar sessão de checkout", "price_id", req.PriceID, "error", err)
		return nil, fmt.Errorf("erro ao criar sessão de checkout: %w", err)
	}

	p.logger.Info("sessão de checkout criada", "session_id", s.ID, "price_id", req.PriceID)
	return &checkout.Session{ID: s.ID, URL: s.URL}, nil
}
