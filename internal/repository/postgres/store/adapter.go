package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	storeuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/store"
)

type StoreDirectoryAdapter struct {
	repo *StoreRepo
}

func NewStoreDirectoryAdapter(repo *StoreRepo) *StoreDirectoryAdapter {
	return &StoreDirectoryAdapter{repo: repo}
}

func (a *StoreDirectoryAdapter) Create(ctx context.Context, in storeuc.RegisterInput, apiKey string) (string, error) {
	row, err := a.repo.Create(ctx, StoreRow{
		StoreName:      in.StoreName,
		OwnerName:      in.OwnerName,
		TypeOfBusiness: in.TypeOfBusiness,
		Email:          in.Email,
		Phone:          in.Phone,
		GSTNumber:      in.GSTNumber,
		Address:        in.Address,
		Pincode:        in.Pincode,
		LogoURL:        in.LogoURL,
		APIKey:         apiKey,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return "", storeuc.ErrPhoneConflict
		}
		return "", err
	}
	return row.ID, nil
}

func (a *StoreDirectoryAdapter) GetByID(ctx context.Context, id string) (*storeuc.Store, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storeuc.ErrNotFound
		}
		return nil, err
	}
	return mapStoreRow(row), nil
}

func (a *StoreDirectoryAdapter) List(ctx context.Context) ([]storeuc.Store, error) {
	rows, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]storeuc.Store, 0, len(rows))
	for i := range rows {
		out = append(out, *mapStoreRow(&rows[i]))
	}
	return out, nil
}

func (a *StoreDirectoryAdapter) Update(ctx context.Context, id string, in storeuc.UpdateInput) error {
	_, err := a.repo.Update(ctx, id,
		in.StoreName, in.OwnerName, in.TypeOfBusiness, in.Email, in.Phone,
		in.GSTNumber, in.Address, in.Pincode, in.LogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storeuc.ErrNotFound
		}
		if isUniqueViolation(err) {
			return storeuc.ErrPhoneConflict
		}
		return err
	}
	return nil
}

func (a *StoreDirectoryAdapter) Delete(ctx context.Context, id string) error {
	ok, err := a.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return storeuc.ErrNotFound
	}
	return nil
}

func mapStoreRow(r *StoreRow) *storeuc.Store {
	return &storeuc.Store{
		ID:             r.ID,
		StoreName:      r.StoreName,
		OwnerName:      r.OwnerName,
		TypeOfBusiness: r.TypeOfBusiness,
		Email:          r.Email,
		Phone:          r.Phone,
		GSTNumber:      r.GSTNumber,
		Address:        r.Address,
		Pincode:        r.Pincode,
		LogoURL:        r.LogoURL,
		CreatedAt:      r.CreatedAt,
	}
}

// Compile-time check
var _ storeuc.Directory = (*StoreDirectoryAdapter)(nil)
