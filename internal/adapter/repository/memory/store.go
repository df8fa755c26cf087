// Package memory implementa os repositórios da loja em memória.
// É o armazenamento padrão da API e também o usado nos testes.
package memory

import (
	"context"
	"sync"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/pkg/repository"
)

type state struct {
	accounts  *table[account.Account]
	products  *table[product.Product]
	customers *table[customer.Customer]
	sales     *table[sale.Sale]
	employees *table[employee.Employee]
	expenses  *table[expense.Expense]
}

func newState() *state {
	return &state{
		accounts:  newTable[account.Account](),
		products:  newTable[product.Product](),
		customers: newTable[customer.Customer](),
		sales:     newTable[sale.Sale](),
		employees: newTable[employee.Employee](),
		expenses:  newTable[expense.Expense](),
	}
}

func (s *state) clone() *state {
	return &state{
		accounts:  s.accounts.clone(),
		products:  s.products.clone(),
		customers: s.customers.clone(),
		sales:     s.sales.clone(),
		employees: s.employees.clone(),
		expenses:  s.expenses.clone(),
	}
}

// Store implementa repository.Store guardando os dados em memória
type Store struct {
	mu   *sync.RWMutex
	data *state
	inTx bool
}

// NewStore cria um armazenamento em memória vazio
func NewStore() *Store {
	return &Store{
		mu:   &sync.RWMutex{},
		data: newState(),
	}
}

var _ repository.Store = (*Store)(nil)

// read executa fn com leitura protegida. Dentro de uma transação o lock já está adquirido.
func (s *Store) read(fn func(d *state)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.data)
}

func (s *Store) write(fn func(d *state) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.data)
}

// WithinTx executa fn sobre uma cópia do estado e só publica a cópia se fn terminar sem erro.
// O lock de escrita fica retido durante toda a transação.
func (s *Store) WithinTx(ctx context.Context, accountID string, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{mu: s.mu, data: s.data.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}

	*s.data = *tx.data
	return nil
}

func (s *Store) Accounts() account.Repository   { return &accountRepository{store: s} }
func (s *Store) Products() product.Repository   { return &productRepository{store: s} }
func (s *Store) Customers() customer.Repository { return &customerRepository{store: s} }
func (s *Store) Sales() sale.Repository         { return &saleRepository{store: s} }
func (s *Store) Employees() employee.Repository { return &employeeRepository{store: s} }
func (s *Store) Expenses() expense.Repository   { return &expenseRepository{store: s} }
