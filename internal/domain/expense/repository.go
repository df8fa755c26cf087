package expense

import (
	"context"
)

// Filter restringe a listagem de despesas
type Filter struct {
	Search string
}

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, accountID, id string) (*Expense, error)
	List(ctx context.Context, accountID string, filter Filter) ([]*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, accountID, id string) error
}
