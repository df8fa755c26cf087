package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
)

// Quantidade de itens nos rankings do dashboard
const topLimit = 5

// Dashboard reúne os indicadores exibidos na página inicial
type Dashboard struct {
	GeneratedAt  time.Time              `json:"generated_at"`
	Plan         plan.Plan              `json:"plan"`
	Usage        []plan.Usage           `json:"usage"`
	Daily        stats.Summary          `json:"daily"`
	Weekly       stats.Summary          `json:"weekly"`
	Monthly      stats.Summary          `json:"monthly"`
	Totals       stats.Totals           `json:"totals"`
	TopProducts  []stats.ProductRank    `json:"top_products"`
	TopCustomers []*customer.Customer   `json:"top_customers"`
	Inventory    stats.InventorySummary `json:"inventory"`
	Expenses     stats.ExpenseSummary   `json:"expenses"`
	Customers    int                    `json:"customers"`
	RecentSales  []*sale.Sale           `json:"recent_sales"`
}

// DashboardService calcula os indicadores a partir do estado atual dos repositórios
type DashboardService struct {
	*base
}

// Overview recalcula todos os indicadores da conta
func (s *DashboardService) Overview(ctx context.Context, accountID string) (*Dashboard, error) {
	a, err := s.Store.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	p, err := plan.Get(a.Plan)
	if err != nil {
		return nil, err
	}

	sales, err := s.Store.Sales().List(ctx, accountID, sale.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	customers, err := s.Store.Customers().List(ctx, accountID, customer.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	products, err := s.Store.Products().List(ctx, accountID, product.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	expenses, err := s.Store.Expenses().List(ctx, accountID, expense.Filter{})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}

	usage, err := s.usage(ctx, a)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	recent := sales
	if len(recent) > topLimit {
		recent = recent[:topLimit]
	}

	return &Dashboard{
		GeneratedAt:  now,
		Plan:         p,
		Usage:        usage,
		Daily:        stats.Daily(sales, now),
		Weekly:       stats.Weekly(sales, now),
		Monthly:      stats.Monthly(sales, now),
		Totals:       stats.SalesTotals(sales),
		TopProducts:  stats.TopProducts(sales, topLimit),
		TopCustomers: stats.TopCustomers(customers, topLimit),
		Inventory:    stats.Inventory(products),
		Expenses:     stats.Expenses(expenses, now),
		Customers:    len(customers),
		RecentSales:  recent,
	}, nil
}
