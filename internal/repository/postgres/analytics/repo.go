package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	analyticsuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/analytics"
)

// AnalyticsRepo serves the read-only aggregate queries directly in usecase
// terms; there is no separate adapter because nothing here mutates state.
type AnalyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepo(db *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

func (r *AnalyticsRepo) StoreExists(ctx context.Context, storeID string) (bool, error) {
	const q = `SELECT 1 FROM stores WHERE id = $1::uuid;`
	var one int
	err := r.db.QueryRow(ctx, q, storeID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *AnalyticsRepo) ListCustomers(ctx context.Context, storeID string) ([]analyticsuc.Customer, error) {
	const q = `
SELECT id::text, customer_code, customer_name, phone, created_at
FROM customers
WHERE store_id = $1::uuid
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analyticsuc.Customer, 0, 32)
	for rows.Next() {
		var c analyticsuc.Customer
		if err := rows.Scan(&c.ID, &c.CustomerCode, &c.CustomerName, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) CountRepeatCustomers(ctx context.Context, storeID string) (int, error) {
	const q = `
SELECT COUNT(*)
FROM (
  SELECT customer_id
  FROM invoices
  WHERE store_id = $1::uuid AND customer_id IS NOT NULL
  GROUP BY customer_id
  HAVING COUNT(*) > 1
) repeats;
`
	var n int
	if err := r.db.QueryRow(ctx, q, storeID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *AnalyticsRepo) CountNewCustomers(ctx context.Context, storeID string) (int, error) {
	const q = `
SELECT COUNT(*)
FROM customers
WHERE store_id = $1::uuid
  AND created_at >= now() - INTERVAL '30 days';
`
	var n int
	if err := r.db.QueryRow(ctx, q, storeID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *AnalyticsRepo) AverageInvoiceValue(ctx context.Context, storeID string) (float64, error) {
	const q = `
SELECT COALESCE(ROUND(AVG(total), 2), 0)::float8
FROM invoices
WHERE store_id = $1::uuid;
`
	var avg float64
	if err := r.db.QueryRow(ctx, q, storeID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *AnalyticsRepo) SpendingTrends(ctx context.Context, storeID string, daily bool) ([]analyticsuc.TrendPoint, error) {
	const dailyQ = `
SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS label, SUM(total)::float8 AS value
FROM invoices
WHERE store_id = $1::uuid
  AND created_at >= now() - INTERVAL '30 days'
GROUP BY TO_CHAR(created_at, 'YYYY-MM-DD'), DATE_TRUNC('day', created_at)
ORDER BY DATE_TRUNC('day', created_at);
`
	const monthlyQ = `
SELECT TO_CHAR(created_at, 'Mon') AS label, SUM(total)::float8 AS value
FROM invoices
WHERE store_id = $1::uuid
GROUP BY TO_CHAR(created_at, 'Mon'), DATE_TRUNC('month', created_at)
ORDER BY DATE_TRUNC('month', created_at);
`
	q := monthlyQ
	if daily {
		q = dailyQ
	}

	rows, err := r.db.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analyticsuc.TrendPoint, 0, 12)
	for rows.Next() {
		var p analyticsuc.TrendPoint
		if err := rows.Scan(&p.Label, &p.Value); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) TopCustomers(ctx context.Context, storeID string, limit int) ([]analyticsuc.TopCustomer, error) {
	const q = `
SELECT
  c.id::text,
  c.customer_name,
  SUM(i.total)::float8 AS total_spent,
  COUNT(i.id) AS orders,
  MAX(i.created_at) AS last_purchase
FROM invoices i
JOIN customers c ON i.customer_id = c.id
WHERE i.store_id = $1::uuid
GROUP BY c.id, c.customer_name
ORDER BY total_spent DESC
LIMIT $2;
`
	rows, err := r.db.Query(ctx, q, storeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analyticsuc.TopCustomer, 0, limit)
	for rows.Next() {
		var t analyticsuc.TopCustomer
		if err := rows.Scan(&t.CustomerID, &t.Name, &t.TotalSpent, &t.Orders, &t.LastPurchase); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) LoyaltyStats(ctx context.Context, storeID string) (*analyticsuc.LoyaltyStats, error) {
	var out analyticsuc.LoyaltyStats

	const countsQ = `
SELECT
  COUNT(DISTINCT c.id) AS total_customers,
  COUNT(DISTINCT CASE WHEN i.inv_count > 1 THEN c.id END) AS repeat_customers
FROM (
  SELECT customer_id, COUNT(*) AS inv_count
  FROM invoices
  WHERE store_id = $1::uuid AND customer_id IS NOT NULL
  GROUP BY customer_id
) i
JOIN customers c ON i.customer_id = c.id;
`
	if err := r.db.QueryRow(ctx, countsQ, storeID).Scan(&out.TotalCustomers, &out.RepeatCustomers); err != nil {
		return nil, err
	}

	const freqQ = `
SELECT COALESCE(AVG(inv_count), 0)::float8
FROM (
  SELECT customer_id, COUNT(*) AS inv_count
  FROM invoices
  WHERE store_id = $1::uuid AND customer_id IS NOT NULL
  GROUP BY customer_id
) sub;
`
	if err := r.db.QueryRow(ctx, freqQ, storeID).Scan(&out.AvgFrequency); err != nil {
		return nil, err
	}

	const intervalQ = `
SELECT COALESCE(AVG(diff), 0)::float8
FROM (
  SELECT EXTRACT(EPOCH FROM created_at - LAG(created_at)
           OVER (PARTITION BY customer_id ORDER BY created_at)) / 86400 AS diff
  FROM invoices
  WHERE store_id = $1::uuid AND customer_id IS NOT NULL
) diffs
WHERE diff IS NOT NULL;
`
	if err := r.db.QueryRow(ctx, intervalQ, storeID).Scan(&out.AvgIntervalDays); err != nil {
		return nil, err
	}

	return &out, nil
}

func (r *AnalyticsRepo) CustomerDetails(ctx context.Context, customerCode string) (*analyticsuc.CustomerDetails, error) {
	const q = `
SELECT
  c.customer_name,
  c.phone,
  COALESCE(SUM(i.total), 0)::float8 AS total_spent,
  COUNT(i.id) AS orders,
  MAX(i.created_at) AS last_purchase
FROM customers c
LEFT JOIN invoices i ON i.customer_id = c.id
WHERE c.customer_code = $1
GROUP BY c.customer_name, c.phone;
`
	var out analyticsuc.CustomerDetails
	err := r.db.QueryRow(ctx, q, customerCode).Scan(&out.Name, &out.Contact, &out.TotalSpent, &out.Orders, &out.LastPurchase)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, analyticsuc.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AnalyticsRepo) ExportRows(ctx context.Context, storeID string) ([]analyticsuc.ExportRow, error) {
	const q = `
SELECT
  c.customer_name,
  c.phone,
  COUNT(i.id) AS total_orders,
  COALESCE(SUM(i.total), 0)::numeric(18,2)::text AS total_spent,
  MAX(i.created_at) AS last_purchase
FROM customers c
LEFT JOIN invoices i ON i.customer_id = c.id
WHERE c.store_id = $1::uuid
GROUP BY c.customer_name, c.phone
ORDER BY SUM(i.total) DESC NULLS LAST;
`
	rows, err := r.db.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analyticsuc.ExportRow, 0, 32)
	for rows.Next() {
		var e analyticsuc.ExportRow
		if err := rows.Scan(&e.CustomerName, &e.Phone, &e.TotalOrders, &e.TotalSpent, &e.LastPurchase); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Compile-time check
var _ analyticsuc.Reads = (*AnalyticsRepo)(nil)
