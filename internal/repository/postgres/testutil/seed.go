package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertStore(t *testing.T, db *pgxpool.Pool, name string) string {
	t.Helper()

	// phone must be unique across stores; derive one per call
	phone := fmt.Sprintf("9%09d", time.Now().UnixNano()%1_000_000_000)

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO stores (store_name, phone, api_key)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, name, phone, uuid.New().String()).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertProduct(t *testing.T, db *pgxpool.Pool, storeID, name, sku string, price string, quantity int) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (store_id, name, sku, price, quantity)
		VALUES ($1::uuid, $2, $3, $4::numeric, $5)
		RETURNING id::text
	`, storeID, name, sku, price, quantity).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertCustomer(t *testing.T, db *pgxpool.Pool, storeID, name, phone string) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO customers (store_id, customer_code, customer_name, phone)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING id::text
	`, storeID, "CUST-"+uuid.New().String()[:8], name, phone).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func ProductQuantity(t *testing.T, db *pgxpool.Pool, productID string) int {
	t.Helper()

	var qty int
	err := db.QueryRow(context.Background(), `
		SELECT quantity FROM products WHERE id = $1::uuid
	`, productID).Scan(&qty)

	require.NoError(t, err)
	return qty
}

func CountRows(t *testing.T, db *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func MustInsertInvoice(t *testing.T, db *pgxpool.Pool, storeID string, customerID *string, total string, createdAt time.Time) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO invoices (store_id, customer_id, customer_name, total, payment_method, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4::numeric, $5, $6)
		RETURNING id::text
	`, storeID, customerID, "Seeded", total, "cash", createdAt).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}
