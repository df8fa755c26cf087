package memory

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/expense"
)

type expenseRepository struct {
	store *Store
}

func (r *expenseRepository) Create(_ context.Context, e *expense.Expense) error {
	return r.store.write(func(d *state) error {
		if !d.expenses.insert(e.ID, *e) {
			return fmt.Errorf("erro ao criar despesa %s: %w", e.ID, ErrDuplicateID)
		}
		return nil
	})
}

func (r *expenseRepository) FindByID(_ context.Context, accountID, id string) (*expense.Expense, error) {
	var (
		found expense.Expense
		ok    bool
	)
	r.store.read(func(d *state) {
		found, ok = d.expenses.get(id)
	})
	if !ok || found.AccountID != accountID {
		return nil, expense.ErrNotFound
	}
	return &found, nil
}

func (r *expenseRepository) List(_ context.Context, accountID string, filter expense.Filter) ([]*expense.Expense, error) {
	expenses := make([]*expense.Expense, 0)
	r.store.read(func(d *state) {
		d.expenses.each(func(e expense.Expense) {
			if e.AccountID == accountID && e.Matches(filter.Search) {
				expenses = append(expenses, &e)
			}
		})
	})
	return expenses, nil
}

func (r *expenseRepository) Update(_ context.Context, e *expense.Expense) error {
	return r.store.write(func(d *state) error {
		current, ok := d.expenses.get(e.ID)
		if !ok || current.AccountID != e.AccountID {
			return expense.ErrNotFound
		}
		d.expenses.put(e.ID, *e)
		return nil
	})
}

func (r *expenseRepository) Delete(_ context.Context, accountID, id string) error {
	return r.store.write(func(d *state) error {
		current, ok := d.expenses.get(id)
		if !ok || current.AccountID != accountID {
			return expense.ErrNotFound
		}
		d.expenses.remove(id)
		return nil
	})
}
