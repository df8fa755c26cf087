package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, account_id, name, email, password, role, created_at, updated_at`

// EmployeeRepository implementa a interface employee.Repository
type EmployeeRepository struct {
	db DBTX
}

// Create implementa employee.Repository.Create
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.AccountID, e.Name, e.Email, e.Password, e.Role, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao criar funcionário: %w", err)
	}
	return nil
}

// FindByID implementa employee.Repository.FindByID
func (r *EmployeeRepository) FindByID(ctx context.Context, accountID, id string) (*employee.Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE account_id = $1 AND id = $2`,
		accountID, id)

	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar funcionário: %w", err)
	}
	return e, nil
}

// List implementa employee.Repository.List
func (r *EmployeeRepository) List(ctx context.Context, accountID string, filter employee.Filter) ([]*employee.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees
		WHERE account_id = $1
		  AND ($2 = '' OR strpos(lower(name), $2) > 0 OR strpos(email, $2) > 0)
		ORDER BY seq`,
		accountID, searchTerm(filter.Search))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar funcionários: %w", err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler funcionário: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar funcionários: %w", err)
	}
	return employees, nil
}

// Update implementa employee.Repository.Update
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE employees SET name = $3, email = $4, password = $5, updated_at = $6
		WHERE account_id = $1 AND id = $2`,
		e.AccountID, e.ID, e.Name, e.Email, e.Password, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao atualizar funcionário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

// Delete implementa employee.Repository.Delete
func (r *EmployeeRepository) Delete(ctx context.Context, accountID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir funcionário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrNotFound
	}
	return nil
}

// CountByAccount implementa employee.Repository.CountByAccount
func (r *EmployeeRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE account_id = $1`, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar funcionários: %w", err)
	}
	return count, nil
}

// ExistsByEmail implementa employee.Repository.ExistsByEmail
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, accountID, email, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE account_id = $1 AND email = $2 AND id <> $3)`,
		accountID, employee.NormalizeEmail(email), excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email do funcionário: %w", err)
	}
	return exists, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.AccountID, &e.Name, &e.Email, &e.Password, &e.Role,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
