package repository

import (
	"context"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
)

// Store agrupa os repositórios usados pelos serviços da loja
type Store interface {
	// Accounts retorna o repositório de contas
	Accounts() account.Repository

	// Products retorna o repositório de produtos
	Products() product.Repository

	// Customers retorna o repositório de clientes
	Customers() customer.Repository

	// Sales retorna o repositório de vendas
	Sales() sale.Repository

	// Employees retorna o repositório de funcionários
	Employees() employee.Repository

	// Expenses retorna o repositório de despesas
	Expenses() expense.Repository

	// WithinTx executa fn de forma atômica para a conta informada.
	// Operações concorrentes da mesma conta são serializadas e, se fn
	// retornar erro, nenhuma alteração feita através de tx é mantida.
	WithinTx(ctx context.Context, accountID string, fn func(tx Store) error) error
}
