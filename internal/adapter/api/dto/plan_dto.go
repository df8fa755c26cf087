package dto

import (
	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/pkg/format"
)

// PlanResponse representa um plano de assinatura. Limites nulos significam ilimitado.
type PlanResponse struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	MaxProducts    *int     `json:"max_products"`
	MaxSalesPerDay *int     `json:"max_sales_per_day"`
	MaxEmployees   *int     `json:"max_employees"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
	Features       []string `json:"features"`
}

// CheckoutConfigResponse contém os identificadores usados pelo botão de upgrade
type CheckoutConfigResponse struct {
	PublishableKey string `json:"publishable_key"`
	PriceID        string `json:"price_id"`
	ProductID      string `json:"product_id"`
}

// PlansResponse representa a página de planos
type PlansResponse struct {
	Plans    []PlanResponse         `json:"plans"`
	Checkout CheckoutConfigResponse `json:"checkout"`
}

// UsageResponse representa o consumo de um recurso limitado
type UsageResponse struct {
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
	Limit   *int   `json:"limit"`
	Reached bool   `json:"reached"`
}

// AccountResponse representa a conta com o plano atual e o consumo
type AccountResponse struct {
	User  UserResponse    `json:"user"`
	Plan  PlanResponse    `json:"plan"`
	Usage []UsageResponse `json:"usage"`
}

// ChangePlanRequest representa a troca de plano
type ChangePlanRequest struct {
	Plan string `json:"plan" example:"pro"`
}

// ToPlanResponse converte um plano para a resposta
func ToPlanResponse(p plan.Plan) PlanResponse {
	return PlanResponse{
		Type:           string(p.Type),
		Name:           p.Name,
		MaxProducts:    p.MaxProducts,
		MaxSalesPerDay: p.MaxSalesPerDay,
		MaxEmployees:   p.MaxEmployees,
		Price:          money(p.Price),
		PriceFormatted: format.Currency(p.Price),
		Features:       p.Features,
	}
}

// ToUsageResponse converte o consumo dos recursos
func ToUsageResponse(usage []plan.Usage) []UsageResponse {
	items := make([]UsageResponse, 0, len(usage))
	for _, u := range usage {
		items = append(items, UsageResponse{
			Kind:    string(u.Kind),
			Count:   u.Count,
			Limit:   u.Limit,
			Reached: u.Reached,
		})
	}
	return items
}

// ToAccountResponse monta a resposta da conta
func ToAccountResponse(a *account.Account, p plan.Plan, usage []plan.Usage) AccountResponse {
	return AccountResponse{
		User:  ToUserResponse(a),
		Plan:  ToPlanResponse(p),
		Usage: ToUsageResponse(usage),
	}
}
