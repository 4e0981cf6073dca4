package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRow struct {
	ID            string
	StoreID       string
	CustomerName  string
	Phone         *string
	Total         string
	Discount      string
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
}

type InvoiceItemRow struct {
	ProductID   string
	ProductName string
	Qty         int
	Price       string
	Subtotal    string
}

type InvoiceSummaryRow struct {
	ID           string
	CustomerName string
	Total        string
	CreatedAt    time.Time
}

type InvoiceRepo struct {
	db *pgxpool.Pool
}

func NewInvoiceRepo(db *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (r *InvoiceRepo) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.db.BeginTx(ctx, pgx.TxOptions{})
}

// getProductPrice resolves the live catalog price for a product owned by the
// store. pgx.ErrNoRows means the product does not exist for that store.
func getProductPrice(ctx context.Context, tx pgx.Tx, productID, storeID string) (string, error) {
	const q = `
SELECT price::text
FROM products
WHERE id = $1::uuid AND store_id = $2::uuid;
`
	var price string
	if err := tx.QueryRow(ctx, q, productID, storeID).Scan(&price); err != nil {
		return "", err
	}
	return price, nil
}

// lockProductQty takes the row lock that serializes concurrent invoices over
// the same product.
func lockProductQty(ctx context.Context, tx pgx.Tx, productID, storeID string) (int, error) {
	const q = `
SELECT quantity
FROM products
WHERE id = $1::uuid AND store_id = $2::uuid
FOR UPDATE;
`
	var qty int
	if err := tx.QueryRow(ctx, q, productID, storeID).Scan(&qty); err != nil {
		return 0, err
	}
	return qty, nil
}

// deductStock decrements quantity. The WHERE clause refuses the update when
// it would take quantity below zero; callers check the affected row count.
func deductStock(ctx context.Context, tx pgx.Tx, productID, storeID string, qty int) (bool, error) {
	const q = `
UPDATE products
SET quantity = quantity - $3
WHERE id = $1::uuid AND store_id = $2::uuid AND quantity >= $3;
`
	ct, err := tx.Exec(ctx, q, productID, storeID, qty)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func insertInvoice(
	ctx context.Context,
	tx pgx.Tx,
	storeID string,
	customerID *string,
	customerName string,
	phone *string,
	total string,
	discount float64,
	paymentMethod string,
) (string, error) {
	const q = `
INSERT INTO invoices (store_id, customer_id, customer_name, phone, total, discount, payment_method, status)
VALUES ($1::uuid, $2::uuid, $3, $4, $5::numeric, $6, $7, 'completed')
RETURNING id::text;
`
	var id string
	if err := tx.QueryRow(ctx, q, storeID, customerID, customerName, phone, total, discount, paymentMethod).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func insertInvoiceItem(ctx context.Context, tx pgx.Tx, invoiceID, productID string, qty int, price string) error {
	const q = `
INSERT INTO invoice_items (invoice_id, product_id, qty, price)
VALUES ($1::uuid, $2::uuid, $3, $4::numeric);
`
	_, err := tx.Exec(ctx, q, invoiceID, productID, qty, price)
	return err
}

// resolveCustomer finds the store's customer record for a phone number,
// creating one on first sight so analytics can attribute the invoice. The
// upsert keeps two concurrent first invoices for the same phone from
// tripping the (store_id, phone) unique constraint; the existing row keeps
// its customer_code and picks up the latest name.
func resolveCustomer(ctx context.Context, tx pgx.Tx, storeID, customerName, phone string) (string, error) {
	const q = `
INSERT INTO customers (store_id, customer_code, customer_name, phone)
VALUES ($1::uuid, $2, $3, $4)
ON CONFLICT (store_id, phone) DO UPDATE SET customer_name = EXCLUDED.customer_name
RETURNING id::text;
`
	code := "CUST-" + uuid.New().String()[:8]
	var id string
	if err := tx.QueryRow(ctx, q, storeID, code, customerName, phone).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *InvoiceRepo) GetHeader(ctx context.Context, id string) (*InvoiceRow, error) {
	const q = `
SELECT id::text, store_id::text, customer_name, phone,
       total::text, discount::text, payment_method, status, created_at
FROM invoices
WHERE id = $1::uuid;
`
	var out InvoiceRow
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&out.ID,
		&out.StoreID,
		&out.CustomerName,
		&out.Phone,
		&out.Total,
		&out.Discount,
		&out.PaymentMethod,
		&out.Status,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *InvoiceRepo) GetItems(ctx context.Context, invoiceID string) ([]InvoiceItemRow, error) {
	const q = `
SELECT ii.product_id::text, p.name, ii.qty, ii.price::text, (ii.qty * ii.price)::numeric(18,2)::text
FROM invoice_items ii
JOIN products p ON p.id = ii.product_id
WHERE ii.invoice_id = $1::uuid;
`
	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InvoiceItemRow, 0, 8)
	for rows.Next() {
		var it InvoiceItemRow
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Qty, &it.Price, &it.Subtotal); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *InvoiceRepo) ListByStore(ctx context.Context, storeID string) ([]InvoiceSummaryRow, error) {
	const q = `
SELECT id::text, customer_name, total::text, created_at
FROM invoices
WHERE store_id = $1::uuid
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InvoiceSummaryRow, 0, 16)
	for rows.Next() {
		var s InvoiceSummaryRow
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.Total, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string) (string, string, error) {
	const q = `
UPDATE invoices
SET status = $2
WHERE id = $1::uuid
RETURNING id::text, status;
`
	var outID, outStatus string
	if err := r.db.QueryRow(ctx, q, id, status).Scan(&outID, &outStatus); err != nil {
		return "", "", err
	}
	return outID, outStatus, nil
}
