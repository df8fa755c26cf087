package product

import (
	"context"
)

// Filter restringe a listagem de produtos
type Filter struct {
	Search string
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto da conta pelo ID
	FindByID(ctx context.Context, accountID, id string) (*Product, error)

	// List lista os produtos da conta na ordem de cadastro
	List(ctx context.Context, accountID string, filter Filter) ([]*Product, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, accountID, id string) error

	// CountByAccount conta quantos produtos a conta possui
	CountByAccount(ctx context.Context, accountID string) (int, error)
}
