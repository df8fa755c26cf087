package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/sale"
)

type saleRepository struct {
	store *Store
}

func (r *saleRepository) Create(_ context.Context, s *sale.Sale) error {
	return r.store.write(func(d *state) error {
		if !d.sales.insert(s.ID, *s) {
			return fmt.Errorf("erro ao registrar venda %s: %w", s.ID, ErrDuplicateID)
		}
		return nil
	})
}

func (r *saleRepository) FindByID(_ context.Context, accountID, id string) (*sale.Sale, error) {
	var (
		found sale.Sale
		ok    bool
	)
	r.store.read(func(d *state) {
		found, ok = d.sales.get(id)
	})
	if !ok || found.AccountID != accountID {
		return nil, sale.ErrNotFound
	}
	return &found, nil
}

// List retorna as vendas mais recentes primeiro. Vendas com a mesma data
// aparecem na ordem inversa de registro.
func (r *saleRepository) List(_ context.Context, accountID string, filter sale.Filter) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)
	r.store.read(func(d *state) {
		d.sales.each(func(s sale.Sale) {
			if s.AccountID != accountID || !s.Matches(filter.Search) {
				return
			}
			if filter.CustomerID != "" && s.CustomerID != filter.CustomerID {
				return
			}
			sales = append(sales, &s)
		})
	})

	for i, j := 0, len(sales)-1; i < j; i, j = i+1, j-1 {
		sales[i], sales[j] = sales[j], sales[i]
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	return sales, nil
}

func (r *saleRepository) CountBetween(_ context.Context, accountID string, from, to time.Time) (int, error) {
	count := 0
	r.store.read(func(d *state) {
		d.sales.each(func(s sale.Sale) {
			if s.AccountID == accountID && !s.Date.Before(from) && s.Date.Before(to) {
				count++
			}
		})
	})
	return count, nil
}
