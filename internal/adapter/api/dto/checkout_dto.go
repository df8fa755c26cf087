package dto

// CheckoutRequest representa o corpo enviado pelo botão de upgrade
type CheckoutRequest struct {
	PriceID   string `json:"priceId"`
	ProductID string `json:"productId"`
}

// CheckoutResponse representa a sessão criada no provedor
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CheckoutErrorResponse é o formato de erro do endpoint de checkout
type CheckoutErrorResponse struct {
	Error string `json:"error"`
}

// CheckoutSuccessResponse confirma o retorno do checkout
type CheckoutSuccessResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
