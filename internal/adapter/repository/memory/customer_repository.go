package memory

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
)

type customerRepository struct {
	store *Store
}

func (r *customerRepository) Create(_ context.Context, c *customer.Customer) error {
	return r.store.write(func(d *state) error {
		if !d.customers.insert(c.ID, *c) {
			return fmt.Errorf("erro ao criar cliente %s: %w", c.ID, ErrDuplicateID)
		}
		return nil
	})
}

func (r *customerRepository) FindByID(_ context.Context, accountID, id string) (*customer.Customer, error) {
	var (
		found customer.Customer
		ok    bool
	)
	r.store.read(func(d *state) {
		found, ok = d.customers.get(id)
	})
	if !ok || found.AccountID != accountID {
		return nil, customer.ErrNotFound
	}
	return &found, nil
}

func (r *customerRepository) List(_ context.Context, accountID string, filter customer.Filter) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	r.store.read(func(d *state) {
		d.customers.each(func(c customer.Customer) {
			if c.AccountID == accountID && c.Matches(filter.Search) {
				customers = append(customers, &c)
			}
		})
	})
	return customers, nil
}

func (r *customerRepository) Update(_ context.Context, c *customer.Customer) error {
	return r.store.write(func(d *state) error {
		current, ok := d.customers.get(c.ID)
		if !ok || current.AccountID != c.AccountID {
			return customer.ErrNotFound
		}
		d.customers.put(c.ID, *c)
		return nil
	})
}

func (r *customerRepository) Delete(_ context.Context, accountID, id string) error {
	return r.store.write(func(d *state) error {
		current, ok := d.customers.get(id)
		if !ok || current.AccountID != accountID {
			return customer.ErrNotFound
		}
		d.customers.remove(id)
		return nil
	})
}
