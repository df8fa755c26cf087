// Package service implementa os casos de uso da loja sobre o repository.Store.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/pkg/logger"
	"github.com/hugohenrick/lojista-x/pkg/repository"
)

// Recorder recebe eventos de negócio para métricas
type Recorder interface {
	RecordSale(revenue float64)
	RecordPlanDenial(kind string)
}

type noopRecorder struct{}

func (noopRecorder) RecordSale(float64)      {}
func (noopRecorder) RecordPlanDenial(string) {}

// Deps reúne as dependências compartilhadas pelos serviços
type Deps struct {
	Store    repository.Store
	Logger   logger.Logger
	Now      func() time.Time
	Recorder Recorder
}

// Services agrupa todos os serviços da aplicação
type Services struct {
	Accounts  *AccountService
	Auth      *AuthService
	Products  *ProductService
	Customers *CustomerService
	Sales     *SaleService
	Employees *EmployeeService
	Expenses  *ExpenseService
	Dashboard *DashboardService
}

// New cria todos os serviços a partir das dependências. tokens emite o token de acesso no login.
func New(d Deps, tokens TokenIssuer) *Services {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Recorder == nil {
		d.Recorder = noopRecorder{}
	}
	if d.Logger == nil {
		d.Logger = logger.NewNop()
	}

	b := &base{Deps: d}
	return &Services{
		Accounts:  &AccountService{base: b},
		Auth:      &AuthService{base: b, tokens: tokens},
		Products:  &ProductService{base: b},
		Customers: &CustomerService{base: b},
		Sales:     &SaleService{base: b},
		Employees: &EmployeeService{base: b},
		Expenses:  &ExpenseService{base: b},
		Dashboard: &DashboardService{base: b},
	}
}

type base struct {
	Deps
}

// checkLimit aplica a política do plano da conta antes de uma criação
func (b *base) checkLimit(ctx context.Context, tx repository.Store, accountID string, kind plan.Kind, count int) error {
	acc, err := tx.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("erro ao buscar conta: %w", err)
	}

	if err := plan.CanCreate(acc.Plan, kind, count); err != nil {
		if errors.Is(err, plan.ErrLimitReached) {
			b.Recorder.RecordPlanDenial(string(kind))
			b.Logger.Info("criação bloqueada pelo plano", "account_id", accountID, "kind", kind, "plan", acc.Plan, "count", count)
		}
		return err
	}
	return nil
}
