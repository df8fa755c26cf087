package memory

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func (r *employeeRepository) Create(_ context.Context, e *employee.Employee) error {
	return r.store.write(func(d *state) error {
		if emailTaken(d, e.AccountID, e.Email, "") {
			return employee.ErrDuplicateEmail
		}
		if !d.employees.insert(e.ID, *e) {
			return fmt.Errorf("erro ao criar funcionário %s: %w", e.ID, ErrDuplicateID)
		}
		return nil
	})
}

func (r *employeeRepository) FindByID(_ context.Context, accountID, id string) (*employee.Employee, error) {
	var (
		found employee.Employee
		ok    bool
	)
	r.store.read(func(d *state) {
		found, ok = d.employees.get(id)
	})
	if !ok || found.AccountID != accountID {
		return nil, employee.ErrNotFound
	}
	return &found, nil
}

func (r *employeeRepository) List(_ context.Context, accountID string, filter employee.Filter) ([]*employee.Employee, error) {
	employees := make([]*employee.Employee, 0)
	r.store.read(func(d *state) {
		d.employees.each(func(e employee.Employee) {
			if e.AccountID == accountID && e.Matches(filter.Search) {
				employees = append(employees, &e)
			}
		})
	})
	return employees, nil
}

func (r *employeeRepository) Update(_ context.Context, e *employee.Employee) error {
	return r.store.write(func(d *state) error {
		current, ok := d.employees.get(e.ID)
		if !ok || current.AccountID != e.AccountID {
			return employee.ErrNotFound
		}
		if emailTaken(d, e.AccountID, e.Email, e.ID) {
			return employee.ErrDuplicateEmail
		}
		d.employees.put(e.ID, *e)
		return nil
	})
}

func (r *employeeRepository) Delete(_ context.Context, accountID, id string) error {
	return r.store.write(func(d *state) error {
		current, ok := d.employees.get(id)
		if !ok || current.AccountID != accountID {
			return employee.ErrNotFound
		}
		d.employees.remove(id)
		return nil
	})
}

func (r *employeeRepository) CountByAccount(_ context.Context, accountID string) (int, error) {
	count := 0
	r.store.read(func(d *state) {
		d.employees.each(func(e employee.Employee) {
			if e.AccountID == accountID {
				count++
			}
		})
	})
	return count, nil
}

func (r *employeeRepository) ExistsByEmail(_ context.Context, accountID, email, excludeID string) (bool, error) {
	var exists bool
	r.store.read(func(d *state) {
		exists = emailTaken(d, accountID, employee.NormalizeEmail(email), excludeID)
	})
	return exists, nil
}

func emailTaken(d *state, accountID, email, excludeID string) bool {
	taken := false
	d.employees.each(func(e employee.Employee) {
		if e.AccountID == accountID && e.Email == email && e.ID != excludeID {
			taken = true
		}
	})
	return taken
}
