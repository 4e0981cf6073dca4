package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRow struct {
	ID       string
	StoreID  string
	Name     string
	SKU      string
	Price    string
	Quantity int
	Category *string
	Unit     *string
}

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `
  id::text, store_id::text, name, sku, price::text, quantity, category, unit`

func scanProduct(row pgx.Row) (*ProductRow, error) {
	var out ProductRow
	if err := row.Scan(
		&out.ID,
		&out.StoreID,
		&out.Name,
		&out.SKU,
		&out.Price,
		&out.Quantity,
		&out.Category,
		&out.Unit,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepo) Create(ctx context.Context, storeID, name, sku string, price float64, quantity int, category, unit *string) (string, error) {
	const q = `
INSERT INTO products (store_id, name, sku, price, quantity, category, unit)
VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
RETURNING id::text;
`
	var id string
	if err := r.db.QueryRow(ctx, q, storeID, name, sku, price, quantity, category, unit).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *ProductRepo) ListByStore(ctx context.Context, storeID string) ([]ProductRow, error) {
	const q = `SELECT` + productColumns + ` FROM products WHERE store_id = $1::uuid ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProductRow, 0, 32)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) GetByID(ctx context.Context, productID, storeID string) (*ProductRow, error) {
	const q = `SELECT` + productColumns + ` FROM products WHERE id = $1::uuid AND store_id = $2::uuid;`
	return scanProduct(r.db.QueryRow(ctx, q, productID, storeID))
}

func (r *ProductRepo) Update(ctx context.Context, productID, storeID string, name *string, price *float64, quantity *int, category, unit *string) (bool, error) {
	const q = `
UPDATE products
SET
  name     = COALESCE($3, name),
  price    = COALESCE($4, price),
  quantity = COALESCE($5, quantity),
  category = COALESCE($6, category),
  unit     = COALESCE($7, unit)
WHERE id = $1::uuid AND store_id = $2::uuid;
`
	ct, err := r.db.Exec(ctx, q, productID, storeID, name, price, quantity, category, unit)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *ProductRepo) Delete(ctx context.Context, productID, storeID string) (bool, error) {
	const q = `DELETE FROM products WHERE id = $1::uuid AND store_id = $2::uuid;`
	ct, err := r.db.Exec(ctx, q, productID, storeID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// AdjustStock applies a relative quantity change under a row lock so it
// cannot interleave with an invoice's stock pass.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID, storeID string, delta int) (int, bool, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lock = `
SELECT quantity
FROM products
WHERE id = $1::uuid AND store_id = $2::uuid
FOR UPDATE;
`
	var current int
	if err := tx.QueryRow(ctx, lock, productID, storeID).Scan(&current); err != nil {
		return 0, false, err
	}

	next := current + delta
	if next < 0 {
		return current, false, nil
	}

	const upd = `UPDATE products SET quantity = $3 WHERE id = $1::uuid AND store_id = $2::uuid;`
	if _, err := tx.Exec(ctx, upd, productID, storeID, next); err != nil {
		return 0, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, err
	}
	return next, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
