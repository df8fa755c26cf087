package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, account_id, name, category, quantity, purchase_price,
	sale_price, profit, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db DBTX
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.AccountID, p.Name, p.Category, p.Quantity, p.PurchasePrice,
		p.SalePrice, p.Profit, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, accountID, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE account_id = $1 AND id = $2`,
		accountID, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, accountID string, filter product.Filter) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE account_id = $1
		  AND ($2 = '' OR strpos(lower(name), $2) > 0 OR strpos(lower(category), $2) > 0)
		ORDER BY seq`,
		accountID, searchTerm(filter.Search))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar produtos: %w", err)
	}
	return products, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $3, category = $4, quantity = $5, purchase_price = $6,
			sale_price = $7, profit = $8, updated_at = $9
		WHERE account_id = $1 AND id = $2`,
		p.AccountID, p.ID, p.Name, p.Category, p.Quantity, p.PurchasePrice,
		p.SalePrice, p.Profit, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, accountID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE account_id = $1 AND id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// CountByAccount implementa product.Repository.CountByAccount
func (r *ProductRepository) CountByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE account_id = $1`, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Category, &p.Quantity,
		&p.PurchasePrice, &p.SalePrice, &p.Profit, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
