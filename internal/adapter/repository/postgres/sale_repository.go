package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/jackc/pgx/v5"
)

const saleColumns = `id, account_id, product_id, product_name, customer_id, customer_name,
	quantity, unit_price, total_price, profit, seller_id, seller_name, date`

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db DBTX
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.ID, s.AccountID, s.ProductID, s.ProductName, s.CustomerID, s.CustomerName,
		s.Quantity, s.UnitPrice, s.TotalPrice, s.Profit, s.SellerID, s.SellerName, s.Date)
	if err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}
	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, accountID, id string) (*sale.Sale, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE account_id = $1 AND id = $2`,
		accountID, id)

	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, accountID string, filter sale.Filter) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		WHERE account_id = $1
		  AND ($2 = '' OR strpos(lower(product_name), $2) > 0 OR strpos(lower(customer_name), $2) > 0)
		  AND ($3 = '' OR customer_id = $3)
		ORDER BY date DESC, seq DESC`,
		accountID, searchTerm(filter.Search), filter.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}
	return sales, nil
}

// CountBetween implementa sale.Repository.CountBetween
func (r *SaleRepository) CountBetween(ctx context.Context, accountID string, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE account_id = $1 AND date >= $2 AND date < $3`,
		accountID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(&s.ID, &s.AccountID, &s.ProductID, &s.ProductName, &s.CustomerID,
		&s.CustomerName, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.Profit,
		&s.SellerID, &s.SellerName, &s.Date)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
