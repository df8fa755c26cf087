package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, account_id, name, phone, address, cpf, total_spent,
	last_purchase_at, created_at, updated_at`

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db DBTX
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.AccountID, c.Name, c.Phone, c.Address, c.CPF, c.TotalSpent,
		c.LastPurchaseAt, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, accountID, id string) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE account_id = $1 AND id = $2`,
		accountID, id)

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return c, nil
}

// List implementa customer.Repository.List. O nome é comparado sem diferenciar
// maiúsculas; telefone e CPF, literalmente.
func (r *CustomerRepository) List(ctx context.Context, accountID string, filter customer.Filter) ([]*customer.Customer, error) {
	term := strings.TrimSpace(filter.Search)
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers
		WHERE account_id = $1
		  AND ($2 = ''
		       OR strpos(lower(name), lower($2)) > 0
		       OR strpos(phone, $2) > 0
		       OR (cpf <> '' AND strpos(cpf, $2) > 0))
		ORDER BY seq`,
		accountID, term)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar clientes: %w", err)
	}
	return customers, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $3, phone = $4, address = $5, cpf = $6, total_spent = $7,
			last_purchase_at = $8, updated_at = $9
		WHERE account_id = $1 AND id = $2`,
		c.AccountID, c.ID, c.Name, c.Phone, c.Address, c.CPF, c.TotalSpent,
		c.LastPurchaseAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrNotFound
	}
	return nil
}

// Delete implementa customer.Repository.Delete. As vendas do cliente são mantidas.
func (r *CustomerRepository) Delete(ctx context.Context, accountID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(&c.ID, &c.AccountID, &c.Name, &c.Phone, &c.Address, &c.CPF,
		&c.TotalSpent, &c.LastPurchaseAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
