package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidPhone  = errors.New("phone number must be exactly 10 digits")
	ErrInvalidGST    = errors.New("gst number must be exactly 15 characters")
	ErrPhoneConflict = errors.New("store already registered with this phone number")
	ErrNotFound      = errors.New("store not found")
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

type Directory interface {
	Create(ctx context.Context, in RegisterInput, apiKey string) (string, error)
	GetByID(ctx context.Context, id string) (*Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, id string, in UpdateInput) error
	Delete(ctx context.Context, id string) error
}

type Usecase struct {
	dir Directory
}

func New(dir Directory) *Usecase {
	return &Usecase{dir: dir}
}

// NewAPIKey mints the opaque per-store credential.
func NewAPIKey() string {
	return uuid.New().String()
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if in.StoreName == "" || in.Phone == "" {
		return nil, ErrInvalidInput
	}
	if !phoneRe.MatchString(in.Phone) {
		return nil, ErrInvalidPhone
	}
	if in.GSTNumber != nil && len(*in.GSTNumber) != 15 {
		return nil, ErrInvalidGST
	}

	apiKey := NewAPIKey()
	id, err := u.dir.Create(ctx, in, apiKey)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{StoreID: id, APIKey: apiKey}, nil
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Store, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.dir.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context) ([]Store, error) {
	return u.dir.List(ctx)
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) error {
	if id == "" {
		return ErrInvalidInput
	}
	if in.Phone != nil && !phoneRe.MatchString(*in.Phone) {
		return ErrInvalidPhone
	}
	if in.GSTNumber != nil && len(*in.GSTNumber) != 15 {
		return ErrInvalidGST
	}
	return u.dir.Update(ctx, id, in)
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return u.dir.Delete(ctx, id)
}
