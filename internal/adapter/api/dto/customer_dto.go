package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/service"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	CPF     string `json:"cpf"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	CPF            string     `json:"cpf,omitempty"`
	TotalSpent     float64    `json:"total_spent"`
	LastPurchaseAt *time.Time `json:"last_purchase_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CustomerListResponse representa a lista de clientes
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}

// ToInput converte a requisição para a entrada do serviço
func (r CustomerRequest) ToInput() service.CustomerInput {
	return service.CustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		CPF:     r.CPF,
	}
}

// ToCustomerResponse converte um cliente para a resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		CPF:            c.CPF,
		TotalSpent:     money(c.TotalSpent),
		LastPurchaseAt: c.LastPurchaseAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes
func ToCustomerListResponse(customers []*customer.Customer) CustomerListResponse {
	items := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, ToCustomerResponse(c))
	}
	return CustomerListResponse{Items: items, Total: len(items)}
}
