// Package postgres implementa os repositórios da loja sobre o PostgreSQL usando pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/internal/infrastructure/database"
	"github.com/hugohenrick/lojista-x/pkg/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Código do PostgreSQL para violação de unicidade
const uniqueViolation = "23505"

// DBTX é satisfeita tanto pelo pool quanto por uma transação
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implementa repository.Store sobre o PostgreSQL
type Store struct {
	db   *database.PostgresDB
	q    DBTX
	inTx bool
}

// NewStore cria o armazenamento a partir do pool de conexões
func NewStore(db *database.PostgresDB) *Store {
	return &Store{db: db, q: db.Pool()}
}

var _ repository.Store = (*Store)(nil)

// WithinTx executa fn em uma transação. Um advisory lock por conta serializa
// as operações concorrentes da mesma conta até o commit ou rollback.
func (s *Store) WithinTx(ctx context.Context, accountID string, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	return s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, accountID); err != nil {
			return fmt.Errorf("erro ao bloquear conta: %w", err)
		}
		return fn(&Store{db: s.db, q: tx, inTx: true})
	})
}

func (s *Store) Accounts() account.Repository   { return &AccountRepository{db: s.q} }
func (s *Store) Products() product.Repository   { return &ProductRepository{db: s.q} }
func (s *Store) Customers() customer.Repository { return &CustomerRepository{db: s.q} }
func (s *Store) Sales() sale.Repository         { return &SaleRepository{db: s.q} }
func (s *Store) Employees() employee.Repository { return &EmployeeRepository{db: s.q} }
func (s *Store) Expenses() expense.Repository   { return &ExpenseRepository{db: s.q} }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// searchTerm normaliza o termo de busca como as entidades fazem em Matches
func searchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
