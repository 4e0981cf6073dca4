package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	productuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/product"
)

type CatalogAdapter struct {
	repo *ProductRepo
}

func NewCatalogAdapter(repo *ProductRepo) *CatalogAdapter {
	return &CatalogAdapter{repo: repo}
}

func (a *CatalogAdapter) Create(ctx context.Context, in productuc.CreateInput) (string, error) {
	id, err := a.repo.Create(ctx, in.StoreID, in.Name, in.SKU, in.Price, in.Quantity, in.Category, in.Unit)
	if err != nil {
		if isUniqueViolation(err) {
			return "", productuc.ErrSKUConflict
		}
		return "", err
	}
	return id, nil
}

func (a *CatalogAdapter) ListByStore(ctx context.Context, storeID string) ([]productuc.Product, error) {
	rows, err := a.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]productuc.Product, 0, len(rows))
	for i := range rows {
		out = append(out, *mapProductRow(&rows[i]))
	}
	return out, nil
}

func (a *CatalogAdapter) GetByID(ctx context.Context, productID, storeID string) (*productuc.Product, error) {
	row, err := a.repo.GetByID(ctx, productID, storeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, productuc.ErrNotFound
		}
		return nil, err
	}
	return mapProductRow(row), nil
}

func (a *CatalogAdapter) Update(ctx context.Context, productID, storeID string, in productuc.UpdateInput) error {
	ok, err := a.repo.Update(ctx, productID, storeID, in.Name, in.Price, in.Quantity, in.Category, in.Unit)
	if err != nil {
		return err
	}
	if !ok {
		return productuc.ErrNotFound
	}
	return nil
}

func (a *CatalogAdapter) Delete(ctx context.Context, productID, storeID string) error {
	ok, err := a.repo.Delete(ctx, productID, storeID)
	if err != nil {
		// invoice_items keeps a FK to products; sold products stay for history
		if isForeignKeyViolation(err) {
			return productuc.ErrReferenced
		}
		return err
	}
	if !ok {
		return productuc.ErrNotFound
	}
	return nil
}

func (a *CatalogAdapter) AdjustStock(ctx context.Context, productID, storeID string, delta int) (int, error) {
	next, ok, err := a.repo.AdjustStock(ctx, productID, storeID, delta)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, productuc.ErrNotFound
		}
		return 0, err
	}
	if !ok {
		return 0, productuc.ErrNegativeStock
	}
	return next, nil
}

func mapProductRow(r *ProductRow) *productuc.Product {
	return &productuc.Product{
		ID:       r.ID,
		StoreID:  r.StoreID,
		Name:     r.Name,
		SKU:      r.SKU,
		Price:    r.Price,
		Quantity: r.Quantity,
		Category: r.Category,
		Unit:     r.Unit,
	}
}

// Compile-time check
var _ productuc.Catalog = (*CatalogAdapter)(nil)
