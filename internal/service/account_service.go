package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/pkg/repository"
)

// AccountService consulta a conta e troca o plano da assinatura
type AccountService struct {
	*base
}

// Get busca a conta do lojista
func (s *AccountService) Get(ctx context.Context, accountID string) (*account.Account, error) {
	return s.Store.Accounts().FindByID(ctx, accountID)
}

// ChangePlan troca o plano da conta. Registros acima do limite do novo plano são mantidos.
func (s *AccountService) ChangePlan(ctx context.Context, accountID string, t plan.Type) (*account.Account, error) {
	var updated *account.Account
	err := s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		a, err := tx.Accounts().FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if err := a.ChangePlan(t, s.Now()); err != nil {
			return err
		}
		updated = a
		return tx.Accounts().Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("plano alterado", "account_id", accountID, "plan", t)
	return updated, nil
}

// Usage calcula o consumo de cada recurso limitado pelo plano da conta
func (s *AccountService) Usage(ctx context.Context, accountID string) ([]plan.Usage, error) {
	a, err := s.Store.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.usage(ctx, a)
}

func (s *base) usage(ctx context.Context, a *account.Account) ([]plan.Usage, error) {
	products, err := s.Store.Products().CountByAccount(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	employees, err := s.Store.Employees().CountByAccount(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar funcionários: %w", err)
	}

	from := sale.StartOfDay(s.Now())
	salesToday, err := s.Store.Sales().CountBetween(ctx, a.ID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("erro ao contar vendas do dia: %w", err)
	}

	return plan.UsageFor(a.Plan, map[plan.Kind]int{
		plan.KindProduct:  products,
		plan.KindEmployee: employees,
		plan.KindSale:     salesToday,
	})
}
