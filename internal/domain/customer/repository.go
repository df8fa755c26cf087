package customer

import (
	"context"
)

// Filter restringe a listagem de clientes
type Filter struct {
	Search string
}

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente da conta pelo ID
	FindByID(ctx context.Context, accountID, id string) (*Customer, error)

	// List lista os clientes da conta na ordem de cadastro
	List(ctx context.Context, accountID string, filter Filter) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente
	Delete(ctx context.Context, accountID, id string) error
}
