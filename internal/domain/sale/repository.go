package sale

import (
	"context"
	"time"
)

// Filter restringe a listagem de vendas
type Filter struct {
	Search     string
	CustomerID string
}

// Repository define a interface para operações de repositório de vendas.
// Vendas não são editadas nem removidas após o registro.
type Repository interface {
	// Create registra uma nova venda
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda da conta pelo ID
	FindByID(ctx context.Context, accountID, id string) (*Sale, error)

	// List lista as vendas da conta, mais recentes primeiro
	List(ctx context.Context, accountID string, filter Filter) ([]*Sale, error)

	// CountBetween conta as vendas com data em [from, to)
	CountBetween(ctx context.Context, accountID string, from, to time.Time) (int, error)
}
