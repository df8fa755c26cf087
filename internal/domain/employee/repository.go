package employee

import (
	"context"
)

// Filter restringe a listagem de funcionários
type Filter struct {
	Search string
}

// Repository define a interface para operações de repositório de funcionários
type Repository interface {
	// Create cria um novo funcionário
	Create(ctx context.Context, e *Employee) error

	// FindByID busca um funcionário da conta pelo ID
	FindByID(ctx context.Context, accountID, id string) (*Employee, error)

	// List lista os funcionários da conta na ordem de cadastro
	List(ctx context.Context, accountID string, filter Filter) ([]*Employee, error)

	// Update atualiza os dados de um funcionário existente
	Update(ctx context.Context, e *Employee) error

	// Delete remove um funcionário
	Delete(ctx context.Context, accountID, id string) error

	// CountByAccount conta quantos funcionários a conta possui
	CountByAccount(ctx context.Context, accountID string) (int, error)

	// ExistsByEmail verifica se outro funcionário da conta usa o email.
	// excludeID permite ignorar o próprio registro durante uma edição.
	ExistsByEmail(ctx context.Context, accountID, email, excludeID string) (bool, error)
}
