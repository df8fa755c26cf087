// Package seed popula o armazenamento com uma conta de demonstração.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/pkg/logger"
	"github.com/hugohenrick/lojista-x/pkg/repository"
	"github.com/shopspring/decimal"
)

// Credenciais da conta de demonstração
const (
	DemoName     = "Loja Demonstração"
	DemoEmail    = "demo@gmail.com"
	DemoPassword = "123456"
)

// Demo cria a conta de demonstração com produtos, clientes, vendas, um vendedor e despesas.
// Se a conta já existir nada é alterado e a conta existente é retornada.
func Demo(ctx context.Context, store repository.Store, now time.Time, log logger.Logger) (*account.Account, error) {
	existing, err := store.Accounts().FindByEmail(ctx, DemoEmail)
	if err == nil {
		log.Debug("conta de demonstração já existe", "account_id", existing.ID)
		return existing, nil
	}
	if !errors.Is(err, account.ErrNotFound) {
		return nil, fmt.Errorf("erro ao buscar conta de demonstração: %w", err)
	}

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}

	a, err := account.NewAccount(DemoName, DemoEmail, DemoPassword, DemoPassword, day(2024, 1, 1))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar conta de demonstração: %w", err)
	}

	err = store.WithinTx(ctx, a.ID, func(tx repository.Store) error {
		if err := tx.Accounts().Create(ctx, a); err != nil {
			return err
		}

		products := make([]*product.Product, 0, 3)
		for _, p := range []struct {
			name, category      string
			quantity            int
			purchase, salePrice int64
		}{
			{"Camiseta Básica", "Vestuário", 50, 15, 35},
			{"Calça Jeans", "Vestuário", 30, 45, 120},
			{"Tênis Esportivo", "Calçados", 20, 80, 200},
		} {
			created, err := product.NewProduct(a.ID, p.name, p.category, p.quantity,
				decimal.NewFromInt(p.purchase), decimal.NewFromInt(p.salePrice), day(2024, 1, 15))
			if err != nil {
				return err
			}
			if err := tx.Products().Create(ctx, created); err != nil {
				return err
			}
			products = append(products, created)
		}

		customers := make([]*customer.Customer, 0, 2)
		for _, c := range []struct {
			name, phone, address, cpf string
			totalSpent                int64
			createdAt                 time.Time
		}{
			{"João Silva", "(11) 98765-4321", "Rua das Flores, 123", "123.456.789-00", 1250, day(2024, 1, 10)},
			{"Maria Santos", "(11) 91234-5678", "Av. Principal, 456", "", 890, day(2024, 1, 12)},
		} {
			created, err := customer.NewCustomer(a.ID, c.name, c.phone, c.address, c.cpf, c.createdAt)
			if err != nil {
				return err
			}
			created.TotalSpent = decimal.NewFromInt(c.totalSpent)
			if err := tx.Customers().Create(ctx, created); err != nil {
				return err
			}
			customers = append(customers, created)
		}

		owner := sale.Seller{ID: a.ID, Name: sale.OwnerSellerName}
		for _, s := range []struct {
			product  *product.Product
			customer *customer.Customer
			quantity int
			date     time.Time
		}{
			{products[1], customers[1], 2, now.Add(-24 * time.Hour)},
			{products[0], customers[0], 3, now},
		} {
			created, err := sale.NewSale(s.product, s.customer, s.quantity, owner, s.date)
			if err != nil {
				return err
			}
			if err := tx.Sales().Create(ctx, created); err != nil {
				return err
			}
		}

		seller, err := employee.NewEmployee(a.ID, "Carlos Vendedor", "carlos@loja.com", "123456", day(2024, 1, 5))
		if err != nil {
			return err
		}
		if err := tx.Employees().Create(ctx, seller); err != nil {
			return err
		}

		for _, e := range []struct {
			title       string
			category    expense.Category
			amount      int64
			date        time.Time
			description string
		}{
			{"Aluguel Janeiro", expense.CategoryRent, 2500, day(2024, 1, 5), "Aluguel da loja"},
			{"Conta de Luz", expense.CategoryUtilities, 350, day(2024, 1, 10), "Energia elétrica"},
		} {
			created, err := expense.NewExpense(a.ID, e.title, e.category, decimal.NewFromInt(e.amount), e.date, e.description, e.date)
			if err != nil {
				return err
			}
			if err := tx.Expenses().Create(ctx, created); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao popular dados de demonstração: %w", err)
	}

	log.Info("conta de demonstração criada", "account_id", a.ID, "email", DemoEmail)
	return a, nil
}
