package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
	"github.com/hugohenrick/lojista-x/pkg/repository"
)

// SaleInput contém os dados informados no registro de uma venda
type SaleInput struct {
	ProductID  string
	CustomerID string // Opcional
	EmployeeID string // Opcional, vendedor. Vazio indica o proprietário.
	Quantity   int
}

// SalesSummary resume as vendas da conta
type SalesSummary struct {
	Totals  stats.Totals  `json:"totals"`
	Daily   stats.Summary `json:"daily"`
	Weekly  stats.Summary `json:"weekly"`
	Monthly stats.Summary `json:"monthly"`
}

// SaleService registra e consulta vendas
type SaleService struct {
	*base
}

// Register registra uma venda de forma atômica: verifica o limite diário do plano,
// confere o estoque, baixa a quantidade vendida, grava a venda e atualiza o total
// gasto pelo cliente. Qualquer falha descarta todas as alterações.
func (s *SaleService) Register(ctx context.Context, accountID string, in SaleInput) (*sale.Sale, error) {
	if in.Quantity <= 0 {
		return nil, sale.ErrInvalidQuantity
	}

	var registered *sale.Sale

	err := s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		now := s.Now()
		from := sale.StartOfDay(now)

		today, err := tx.Sales().CountBetween(ctx, accountID, from, from.AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("erro ao contar vendas do dia: %w", err)
		}
		if err := s.checkLimit(ctx, tx, accountID, plan.KindSale, today); err != nil {
			return err
		}

		p, err := tx.Products().FindByID(ctx, accountID, in.ProductID)
		if err != nil {
			return err
		}

		var c *customer.Customer
		if in.CustomerID != "" {
			if c, err = tx.Customers().FindByID(ctx, accountID, in.CustomerID); err != nil {
				return err
			}
		}

		seller := sale.Seller{ID: accountID, Name: sale.OwnerSellerName}
		if in.EmployeeID != "" {
			e, err := tx.Employees().FindByID(ctx, accountID, in.EmployeeID)
			if err != nil {
				return err
			}
			seller = sale.Seller{ID: e.ID, Name: e.Name}
		}

		v, err := sale.NewSale(p, c, in.Quantity, seller, now)
		if err != nil {
			return err
		}
		if err := p.Decrease(in.Quantity, now); err != nil {
			return err
		}
		if err := tx.Products().Update(ctx, p); err != nil {
			return fmt.Errorf("erro ao atualizar estoque: %w", err)
		}
		if err := tx.Sales().Create(ctx, v); err != nil {
			return fmt.Errorf("erro ao gravar venda: %w", err)
		}

		if c != nil {
			if err := c.RecordPurchase(v.TotalPrice, now); err != nil {
				return err
			}
			if err := tx.Customers().Update(ctx, c); err != nil {
				return fmt.Errorf("erro ao atualizar cliente: %w", err)
			}
		}

		registered = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Recorder.RecordSale(registered.TotalPrice.InexactFloat64())
	s.Logger.Info("venda registrada",
		"account_id", accountID,
		"sale_id", registered.ID,
		"product_id", registered.ProductID,
		"quantity", registered.Quantity,
		"total", registered.TotalPrice.StringFixed(2))
	return registered, nil
}

// Get busca uma venda da conta
func (s *SaleService) Get(ctx context.Context, accountID, id string) (*sale.Sale, error) {
	return s.Store.Sales().FindByID(ctx, accountID, id)
}

// List lista as vendas, mais recentes primeiro, filtrando por produto ou cliente
func (s *SaleService) List(ctx context.Context, accountID, search string) ([]*sale.Sale, error) {
	return s.Store.Sales().List(ctx, accountID, sale.Filter{Search: search})
}

// Summary calcula totais, margem e os resumos por período
func (s *SaleService) Summary(ctx context.Context, accountID string) (SalesSummary, error) {
	sales, err := s.Store.Sales().List(ctx, accountID, sale.Filter{})
	if err != nil {
		return SalesSummary{}, fmt.Errorf("erro ao listar vendas: %w", err)
	}

	now := s.Now()
	return SalesSummary{
		Totals:  stats.SalesTotals(sales),
		Daily:   stats.Daily(sales, now),
		Weekly:  stats.Weekly(sales, now),
		Monthly: stats.Monthly(sales, now),
	}, nil
}
