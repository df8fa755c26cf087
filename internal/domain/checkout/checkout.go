package checkout

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrProviderNotConfigured = errors.New("provedor de pagamento não configurado")
	ErrMissingPriceID        = errors.New("priceId é obrigatório")
	ErrMissingURL            = errors.New("URLs de retorno do checkout não informadas")
	ErrMissingSessionURL     = errors.New("sessão de checkout criada sem URL de pagamento")
)

const (
	successPath = "/sucesso?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/planos"
)

// Request contém os dados para abrir uma sessão de checkout de assinatura
type Request struct {
	PriceID    string
	ProductID  string
	SuccessURL string
	CancelURL  string
}

// NewRequest monta a requisição com as URLs de retorno a partir da origem do site
func NewRequest(priceID, productID, origin string) (Request, error) {
	if strings.TrimSpace(priceID) == "" {
		return Request{}, ErrMissingPriceID
	}

	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return Request{}, ErrMissingURL
	}

	return Request{
		PriceID:    priceID,
		ProductID:  productID,
		SuccessURL: origin + successPath,
		CancelURL:  origin + cancelPath,
	}, nil
}

// Session é a sessão hospedada criada no provedor
type Session struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// Provider cria sessões de checkout em um provedor de pagamento
type Provider interface {
	CreateSession(ctx context.Context, req Request) (*Session, error)
}

// Disabled é usado quando nenhuma chave do provedor foi configurada
type Disabled struct{}

// CreateSession sempre falha com ErrProviderNotConfigured
func (Disabled) CreateSession(context.Context, Request) (*Session, error) {
	return nil, ErrProviderNotConfigured
}
