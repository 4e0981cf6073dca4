package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreRow struct {
	ID             string
	StoreName      string
	OwnerName      *string
	TypeOfBusiness *string
	Email          *string
	Phone          string
	GSTNumber      *string
	Address        *string
	Pincode        *string
	LogoURL        *string
	APIKey         string
	CreatedAt      time.Time
}

type StoreRepo struct {
	db *pgxpool.Pool
}

func NewStoreRepo(db *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{db: db}
}

const storeColumns = `
  id::text, store_name, owner_name, typeof_business, email, phone,
  gst_number, address, pincode, logo_url, api_key, created_at`

func scanStore(row pgx.Row) (*StoreRow, error) {
	var out StoreRow
	if err := row.Scan(
		&out.ID,
		&out.StoreName,
		&out.OwnerName,
		&out.TypeOfBusiness,
		&out.Email,
		&out.Phone,
		&out.GSTNumber,
		&out.Address,
		&out.Pincode,
		&out.LogoURL,
		&out.APIKey,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *StoreRepo) Create(ctx context.Context, in StoreRow) (*StoreRow, error) {
	const q = `
INSERT INTO stores (store_name, owner_name, typeof_business, email, phone, gst_number, address, pincode, logo_url, api_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING` + storeColumns + `;
`
	row := r.db.QueryRow(ctx, q,
		in.StoreName,
		in.OwnerName,
		in.TypeOfBusiness,
		in.Email,
		in.Phone,
		in.GSTNumber,
		in.Address,
		in.Pincode,
		in.LogoURL,
		in.APIKey,
	)
	return scanStore(row)
}

func (r *StoreRepo) GetByID(ctx context.Context, id string) (*StoreRow, error) {
	const q = `SELECT` + storeColumns + ` FROM stores WHERE id = $1::uuid;`
	return scanStore(r.db.QueryRow(ctx, q, id))
}

func (r *StoreRepo) FindByPhone(ctx context.Context, phone string) (*StoreRow, error) {
	const q = `SELECT` + storeColumns + ` FROM stores WHERE phone = $1;`
	return scanStore(r.db.QueryRow(ctx, q, phone))
}

func (r *StoreRepo) FindIDByAPIKey(ctx context.Context, apiKey string) (string, error) {
	const q = `SELECT id::text FROM stores WHERE api_key = $1;`
	var id string
	if err := r.db.QueryRow(ctx, q, apiKey).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *StoreRepo) List(ctx context.Context) ([]StoreRow, error) {
	const q = `SELECT` + storeColumns + ` FROM stores ORDER BY created_at ASC;`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoreRow, 0, 16)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *StoreRepo) Update(
	ctx context.Context,
	id string,
	storeName, ownerName, typeOfBusiness, email, phone, gstNumber, address, pincode, logoURL *string,
) (*StoreRow, error) {
	const q = `
UPDATE stores
SET
  store_name      = COALESCE($2, store_name),
  owner_name      = COALESCE($3, owner_name),
  typeof_business = COALESCE($4, typeof_business),
  email           = COALESCE($5, email),
  phone           = COALESCE($6, phone),
  gst_number      = COALESCE($7, gst_number),
  address         = COALESCE($8, address),
  pincode         = COALESCE($9, pincode),
  logo_url        = COALESCE($10, logo_url)
WHERE id = $1::uuid
RETURNING` + storeColumns + `;
`
	row := r.db.QueryRow(ctx, q, id, storeName, ownerName, typeOfBusiness, email, phone, gstNumber, address, pincode, logoURL)
	return scanStore(row)
}

func (r *StoreRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM stores WHERE id = $1::uuid;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
