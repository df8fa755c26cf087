package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/product"
)

// ErrDuplicateID indica a inserção de um registro com ID já existente
var ErrDuplicateID = errors.New("registro com mesmo ID já existe")

type productRepository struct {
	store *Store
}

func (r *productRepository) Create(_ context.Context, p *product.Product) error {
	return r.store.write(func(d *state) error {
		if !d.products.insert(p.ID, *p) {
			return fmt.Errorf("erro ao criar produto %s: %w", p.ID, ErrDuplicateID)
		}
		return nil
	})
}

func (r *productRepository) FindByID(_ context.Context, accountID, id string) (*product.Product, error) {
	var (
		found product.Product
		ok    bool
	)
	r.store.read(func(d *state) {
		found, ok = d.products.get(id)
	})
	if !ok || found.AccountID != accountID {
		return nil, product.ErrNotFound
	}
	return &found, nil
}

func (r *productRepository) List(_ context.Context, accountID string, filter product.Filter) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	r.store.read(func(d *state) {
		d.products.each(func(p product.Product) {
			if p.AccountID == accountID && p.Matches(filter.Search) {
				products = append(products, &p)
			}
		})
	})
	return products, nil
}

func (r *productRepository) Update(_ context.Context, p *product.Product) error {
	return r.store.write(func(d *state) error {
		current, ok := d.products.get(p.ID)
		if !ok || current.AccountID != p.AccountID {
			return product.ErrNotFound
		}
		d.products.put(p.ID, *p)
		return nil
	})
}

func (r *productRepository) Delete(_ context.Context, accountID, id string) error {
	return r.store.write(func(d *state) error {
		current, ok := d.products.get(id)
		if !ok || current.AccountID != accountID {
			return product.ErrNotFound
		}
		d.products.remove(id)
		return nil
	})
}

func (r *productRepository) CountByAccount(_ context.Context, accountID string) (int, error) {
	count := 0
	r.store.read(func(d *state) {
		d.products.each(func(p product.Product) {
			if p.AccountID == accountID {
				count++
			}
		})
	})
	return count, nil
}
