package product

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("product not found for this store")
	ErrSKUConflict   = errors.New("product with this sku already exists")
	ErrNegativeStock = errors.New("stock cannot be negative")
	ErrForbidden     = errors.New("cannot add product to another store")
	ErrReferenced    = errors.New("product is referenced by existing invoices and cannot be deleted")
)

type Catalog interface {
	Create(ctx context.Context, in CreateInput) (string, error)
	ListByStore(ctx context.Context, storeID string) ([]Product, error)
	GetByID(ctx context.Context, productID, storeID string) (*Product, error)
	Update(ctx context.Context, productID, storeID string, in UpdateInput) error
	Delete(ctx context.Context, productID, storeID string) error
	AdjustStock(ctx context.Context, productID, storeID string, delta int) (int, error)
}

type Usecase struct {
	catalog Catalog
}

func New(catalog Catalog) *Usecase {
	return &Usecase{catalog: catalog}
}

// Create adds a product to the store resolved from the API key. The storeId
// in the body must match; a key for one store cannot write into another.
func (u *Usecase) Create(ctx context.Context, keyStoreID string, in CreateInput) (string, error) {
	if in.StoreID == "" || in.Name == "" || in.SKU == "" {
		return "", ErrInvalidInput
	}
	if in.StoreID != keyStoreID {
		return "", ErrForbidden
	}
	if in.Price < 0 || in.Quantity < 0 {
		return "", ErrInvalidInput
	}
	return u.catalog.Create(ctx, in)
}

func (u *Usecase) ListByStore(ctx context.Context, storeID string) ([]Product, error) {
	if storeID == "" {
		return nil, ErrInvalidInput
	}
	return u.catalog.ListByStore(ctx, storeID)
}

func (u *Usecase) GetByID(ctx context.Context, productID, storeID string) (*Product, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}
	return u.catalog.GetByID(ctx, productID, storeID)
}

func (u *Usecase) Update(ctx context.Context, productID, storeID string, in UpdateInput) error {
	if productID == "" {
		return ErrInvalidInput
	}
	if in.Price != nil && *in.Price < 0 {
		return ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return ErrInvalidInput
	}
	return u.catalog.Update(ctx, productID, storeID, in)
}

func (u *Usecase) Delete(ctx context.Context, productID, storeID string) error {
	if productID == "" {
		return ErrInvalidInput
	}
	return u.catalog.Delete(ctx, productID, storeID)
}

func (u *Usecase) AdjustStock(ctx context.Context, productID, storeID string, in AdjustStockInput) (int, error) {
	if productID == "" || in.QuantityChange == nil {
		return 0, ErrInvalidInput
	}
	return u.catalog.AdjustStock(ctx, productID, storeID, *in.QuantityChange)
}
