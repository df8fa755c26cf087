package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/pkg/repository"
)

// EmployeeInput contém os campos editáveis de um funcionário
type EmployeeInput struct {
	Name     string
	Email    string
	Password string // Na edição, vazio mantém a senha atual
}

// EmployeeService gerencia os funcionários vendedores
type EmployeeService struct {
	*base
}

// Create cadastra um vendedor respeitando o limite do plano e a unicidade do email
func (s *EmployeeService) Create(ctx context.Context, accountID string, in EmployeeInput) (*employee.Employee, error) {
	e, err := employee.NewEmployee(accountID, in.Name, in.Email, in.Password, s.Now())
	if err != nil {
		return nil, err
	}

	err = s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		count, err := tx.Employees().CountByAccount(ctx, accountID)
		if err != nil {
			return fmt.Errorf("erro ao contar funcionários: %w", err)
		}
		if err := s.checkLimit(ctx, tx, accountID, plan.KindEmployee, count); err != nil {
			return err
		}

		exists, err := tx.Employees().ExistsByEmail(ctx, accountID, e.Email, "")
		if err != nil {
			return fmt.Errorf("erro ao verificar email: %w", err)
		}
		if exists {
			return employee.ErrDuplicateEmail
		}
		return tx.Employees().Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("funcionário criado", "account_id", accountID, "employee_id", e.ID)
	return e, nil
}

// Get busca um funcionário da conta
func (s *EmployeeService) Get(ctx context.Context, accountID, id string) (*employee.Employee, error) {
	return s.Store.Employees().FindByID(ctx, accountID, id)
}

// List lista os funcionários filtrando por nome ou email
func (s *EmployeeService) List(ctx context.Context, accountID, search string) ([]*employee.Employee, error) {
	return s.Store.Employees().List(ctx, accountID, employee.Filter{Search: search})
}

// Update substitui os dados do funcionário. O hash da nova senha é gerado antes da transação.
func (s *EmployeeService) Update(ctx context.Context, accountID, id string, in EmployeeInput) (*employee.Employee, error) {
	var hash string
	if in.Password != "" {
		var err error
		if hash, err = employee.HashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	var updated *employee.Employee
	err := s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		e, err := tx.Employees().FindByID(ctx, accountID, id)
		if err != nil {
			return err
		}
		if err := e.Update(in.Name, in.Email, s.Now()); err != nil {
			return err
		}
		if hash != "" {
			e.Password = hash
		}

		exists, err := tx.Employees().ExistsByEmail(ctx, accountID, e.Email, e.ID)
		if err != nil {
			return fmt.Errorf("erro ao verificar email: %w", err)
		}
		if exists {
			return employee.ErrDuplicateEmail
		}

		updated = e
		return tx.Employees().Update(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete remove um funcionário
func (s *EmployeeService) Delete(ctx context.Context, accountID, id string) error {
	return s.Store.Employees().Delete(ctx, accountID, id)
}
