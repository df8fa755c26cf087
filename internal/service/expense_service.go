package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
	"github.com/hugohenrick/lojista-x/pkg/repository"
	"github.com/shopspring/decimal"
)

// ExpenseInput contém os campos editáveis de uma despesa
type ExpenseInput struct {
	Title       string
	Category    expense.Category
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// ExpenseService gerencia as despesas
type ExpenseService struct {
	*base
}

// Create cadastra uma despesa
func (s *ExpenseService) Create(ctx context.Context, accountID string, in ExpenseInput) (*expense.Expense, error) {
	e, err := expense.NewExpense(accountID, in.Title, in.Category, in.Amount, in.Date, in.Description, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Store.Expenses().Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get busca uma despesa da conta
func (s *ExpenseService) Get(ctx context.Context, accountID, id string) (*expense.Expense, error) {
	return s.Store.Expenses().FindByID(ctx, accountID, id)
}

// List lista as despesas filtrando por título ou descrição
func (s *ExpenseService) List(ctx context.Context, accountID, search string) ([]*expense.Expense, error) {
	return s.Store.Expenses().List(ctx, accountID, expense.Filter{Search: search})
}

// Update substitui os campos editáveis da despesa
func (s *ExpenseService) Update(ctx context.Context, accountID, id string, in ExpenseInput) (*expense.Expense, error) {
	var updated *expense.Expense
	err := s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		e, err := tx.Expenses().FindByID(ctx, accountID, id)
		if err != nil {
			return err
		}
		if err := e.Update(in.Title, in.Category, in.Amount, in.Date, in.Description, s.Now()); err != nil {
			return err
		}
		updated = e
		return tx.Expenses().Update(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete remove uma despesa
func (s *ExpenseService) Delete(ctx context.Context, accountID, id string) error {
	return s.Store.Expenses().Delete(ctx, accountID, id)
}

// Summary calcula os totais de despesas por categoria, mês e ano
func (s *ExpenseService) Summary(ctx context.Context, accountID string) (stats.ExpenseSummary, error) {
	expenses, err := s.Store.Expenses().List(ctx, accountID, expense.Filter{})
	if err != nil {
		return stats.ExpenseSummary{}, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	return stats.Expenses(expenses, s.Now()), nil
}
