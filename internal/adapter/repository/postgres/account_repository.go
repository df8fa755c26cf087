package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, name, email, password, plan, role, last_login_at, created_at, updated_at`

// AccountRepository implementa a interface account.Repository
type AccountRepository struct {
	db DBTX
}

// Create implementa account.Repository.Create
func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Name, a.Email, a.Password, a.Plan, a.Role, a.LastLoginAt, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao criar conta: %w", err)
	}
	return nil
}

// FindByID implementa account.Repository.FindByID
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*account.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// FindByEmail implementa account.Repository.FindByEmail
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, account.NormalizeEmail(email))
}

// Update implementa account.Repository.Update
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE accounts SET
			name = $2, email = $3, password = $4, plan = $5, role = $6,
			last_login_at = $7, updated_at = $8
		WHERE id = $1`,
		a.ID, a.Name, a.Email, a.Password, a.Plan, a.Role, a.LastLoginAt, a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao atualizar conta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrNotFound
	}
	return nil
}

// ExistsByEmail implementa account.Repository.ExistsByEmail
func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`,
		account.NormalizeEmail(email)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg string) (*account.Account, error) {
	var a account.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Name, &a.Email, &a.Password,
		&a.Plan, &a.Role, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta: %w", err)
	}
	return &a, nil
}
