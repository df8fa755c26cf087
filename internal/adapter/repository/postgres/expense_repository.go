package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/jackc/pgx/v5"
)

const expenseColumns = `id, account_id, title, category, amount, date, description, created_at, updated_at`

// ExpenseRepository implementa a interface expense.Repository
type ExpenseRepository struct {
	db DBTX
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.AccountID, e.Title, e.Category, e.Amount, e.Date, e.Description,
		e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar despesa: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, accountID, id string) (*expense.Expense, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE account_id = $1 AND id = $2`,
		accountID, id)

	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, expense.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar despesa: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, accountID string, filter expense.Filter) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		WHERE account_id = $1
		  AND ($2 = '' OR strpos(lower(title), $2) > 0 OR strpos(lower(description), $2) > 0)
		ORDER BY seq`,
		accountID, searchTerm(filter.Search))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler despesa: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar despesas: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE expenses SET
			title = $3, category = $4, amount = $5, date = $6, description = $7, updated_at = $8
		WHERE account_id = $1 AND id = $2`,
		e.AccountID, e.ID, e.Title, e.Category, e.Amount, e.Date, e.Description, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, accountID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.AccountID, &e.Title, &e.Category, &e.Amount, &e.Date,
		&e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
