package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/service"
)

// EmployeeRequest representa a requisição de funcionário. Na edição, senha vazia mantém a atual.
type EmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmployeeResponse representa a resposta de funcionário (sem a senha)
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeListResponse representa a lista de funcionários
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int                `json:"total"`
}

// ToInput converte a requisição para a entrada do serviço
func (r EmployeeRequest) ToInput() service.EmployeeInput {
	return service.EmployeeInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ToEmployeeResponse converte um funcionário para a resposta
func ToEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToEmployeeListResponse converte uma lista de funcionários
func ToEmployeeListResponse(employees []*employee.Employee) EmployeeListResponse {
	items := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, ToEmployeeResponse(e))
	}
	return EmployeeListResponse{Items: items, Total: len(items)}
}
