package account

import (
	"context"
)

// Repository define a interface para operações de repositório de contas
type Repository interface {
	// Create cria uma nova conta
	Create(ctx context.Context, a *Account) error

	// FindByID busca uma conta pelo ID
	FindByID(ctx context.Context, id string) (*Account, error)

	// FindByEmail busca uma conta pelo email
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Update atualiza os dados de uma conta existente
	Update(ctx context.Context, a *Account) error

	// ExistsByEmail verifica se o email já está cadastrado
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
