package service

import (
	"context"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
	"github.com/hugohenrick/lojista-x/pkg/repository"
	"github.com/shopspring/decimal"
)

// ProductInput contém os campos editáveis de um produto
type ProductInput struct {
	Name          string
	Category      string
	Quantity      int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
}

// ProductService gerencia o estoque
type ProductService struct {
	*base
}

// Create cadastra um produto respeitando o limite do plano
func (s *ProductService) Create(ctx context.Context, accountID string, in ProductInput) (*product.Product, error) {
	p, err := product.NewProduct(accountID, in.Name, in.Category, in.Quantity, in.PurchasePrice, in.SalePrice, s.Now())
	if err != nil {
		return nil, err
	}

	err = s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		count, err := tx.Products().CountByAccount(ctx, accountID)
		if err != nil {
			return fmt.Errorf("erro ao contar produtos: %w", err)
		}
		if err := s.checkLimit(ctx, tx, accountID, plan.KindProduct, count); err != nil {
			return err
		}
		return tx.Products().Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("produto criado", "account_id", accountID, "product_id", p.ID)
	return p, nil
}

// Get busca um produto da conta
func (s *ProductService) Get(ctx context.Context, accountID, id string) (*product.Product, error) {
	return s.Store.Products().FindByID(ctx, accountID, id)
}

// List lista os produtos filtrando por nome ou categoria
func (s *ProductService) List(ctx context.Context, accountID, search string) ([]*product.Product, error) {
	return s.Store.Products().List(ctx, accountID, product.Filter{Search: search})
}

// Update substitui os campos editáveis. Edições nunca são bloqueadas pelo plano.
func (s *ProductService) Update(ctx context.Context, accountID, id string, in ProductInput) (*product.Product, error) {
	var updated *product.Product
	err := s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		p, err := tx.Products().FindByID(ctx, accountID, id)
		if err != nil {
			return err
		}
		if err := p.Update(in.Name, in.Category, in.Quantity, in.PurchasePrice, in.SalePrice, s.Now()); err != nil {
			return err
		}
		updated = p
		return tx.Products().Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete remove um produto. Vendas já registradas mantêm a cópia dos dados.
func (s *ProductService) Delete(ctx context.Context, accountID, id string) error {
	if err := s.Store.Products().Delete(ctx, accountID, id); err != nil {
		return err
	}
	s.Logger.Info("produto removido", "account_id", accountID, "product_id", id)
	return nil
}

// Summary calcula valor de estoque e lucro potencial
func (s *ProductService) Summary(ctx context.Context, accountID string) (stats.InventorySummary, error) {
	products, err := s.Store.Products().List(ctx, accountID, product.Filter{})
	if err != nil {
		return stats.InventorySummary{}, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	return stats.Inventory(products), nil
}
