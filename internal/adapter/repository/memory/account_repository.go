package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
)

type accountRepository struct {
	store *Store
}

func (r *accountRepository) Create(_ context.Context, a *account.Account) error {
	return r.store.write(func(d *state) error {
		if findAccountByEmail(d, a.Email) != nil {
			return account.ErrDuplicateEmail
		}
		if !d.accounts.insert(a.ID, *a) {
			return fmt.Errorf("erro ao criar conta %s: %w", a.ID, ErrDuplicateID)
		}
		return nil
	})
}

func (r *accountRepository) FindByID(_ context.Context, id string) (*account.Account, error) {
	var (
		found account.Account
		ok    bool
	)
	r.store.read(func(d *state) {
		found, ok = d.accounts.get(id)
	})
	if !ok {
		return nil, account.ErrNotFound
	}
	return &found, nil
}

func (r *accountRepository) FindByEmail(_ context.Context, email string) (*account.Account, error) {
	var found *account.Account
	r.store.read(func(d *state) {
		found = findAccountByEmail(d, account.NormalizeEmail(email))
	})
	if found == nil {
		return nil, account.ErrNotFound
	}
	return found, nil
}

func (r *accountRepository) Update(_ context.Context, a *account.Account) error {
	return r.store.write(func(d *state) error {
		if other := findAccountByEmail(d, a.Email); other != nil && other.ID != a.ID {
			return account.ErrDuplicateEmail
		}
		if !d.accounts.put(a.ID, *a) {
			return account.ErrNotFound
		}
		return nil
	})
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, account.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func findAccountByEmail(d *state, email string) *account.Account {
	var found *account.Account
	d.accounts.each(func(a account.Account) {
		if found == nil && a.Email == email {
			found = &a
		}
	})
	return found
}
