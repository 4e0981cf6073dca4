package invoice

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotFound          = errors.New("invoice not found")
	ErrInvalidStatus     = errors.New("invalid status")
)

const (
	StatusCompleted = "completed" // set at creation
	StatusPaid      = "paid"
	StatusUnpaid    = "unpaid"
)

// Store executes the invoice transaction against the database. Create must be
// atomic: either the header, all items, and every stock decrement land, or
// nothing does.
type Store interface {
	Create(ctx context.Context, in CreateInput) (*CreateResult, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	ListByStore(ctx context.Context, storeID string) ([]Summary, error)
	UpdateStatus(ctx context.Context, id, status string) (*StatusResult, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if in.StoreID == "" || in.CustomerName == "" || len(in.Items) == 0 || in.PaymentMethod == "" {
		return nil, ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			return nil, ErrInvalidInput
		}
	}
	in.Discount = NormalizeDiscount(in.Discount)

	return u.store.Create(ctx, in)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Invoice, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) ListByStore(ctx context.Context, storeID string) ([]Summary, error) {
	if storeID == "" {
		return nil, ErrInvalidInput
	}
	return u.store.ListByStore(ctx, storeID)
}

func (u *Usecase) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (*StatusResult, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	status := strings.ToLower(in.Status)
	if status != StatusPaid && status != StatusUnpaid {
		return nil, ErrInvalidStatus
	}
	return u.store.UpdateStatus(ctx, id, status)
}

// NormalizeDiscount clamps the discount percentage to [0,100]; anything
// outside the range counts as no discount.
func NormalizeDiscount(pct float64) float64 {
	if pct < 0 || pct > 100 {
		return 0
	}
	return pct
}

// ApplyDiscount returns (discountAmount, finalTotal) for a pre-discount total.
func ApplyDiscount(total decimal.Decimal, pct float64) (decimal.Decimal, decimal.Decimal) {
	amount := total.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100)).Round(2)
	return amount, total.Sub(amount)
}

// FormatMoney renders a decimal the way numeric(18,2) comes back from the DB.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
