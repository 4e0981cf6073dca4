package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	invuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/invoice"
)

type InvoiceStoreAdapter struct {
	repo *InvoiceRepo
}

func NewInvoiceStoreAdapter(repo *InvoiceRepo) *InvoiceStoreAdapter {
	return &InvoiceStoreAdapter{repo: repo}
}

type pricedLine struct {
	productID string
	qty       int
	unit      decimal.Decimal
	unitStr   string
}

// Create runs the whole invoice as one transaction: price every line from the
// catalog, insert the header with the discounted total, then lock each
// product row, verify stock, insert the line item and decrement. Any failure
// rolls the lot back.
func (a *InvoiceStoreAdapter) Create(ctx context.Context, in invuc.CreateInput) (*invuc.CreateResult, error) {
	tx, err := a.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// pricing pass: server-side prices only, the client never supplies one
	lines := make([]pricedLine, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		unitStr, err := getProductPrice(ctx, tx, it.ProductID, in.StoreID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", invuc.ErrProductNotFound, it.ProductID)
			}
			return nil, err
		}

		unit, err := decimal.NewFromString(unitStr)
		if err != nil {
			return nil, err
		}

		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Qty))))
		lines = append(lines, pricedLine{productID: it.ProductID, qty: it.Qty, unit: unit, unitStr: unitStr})
	}

	discountAmount, finalTotal := invuc.ApplyDiscount(total, in.Discount)

	var customerID *string
	if in.Phone != nil && *in.Phone != "" {
		id, err := resolveCustomer(ctx, tx, in.StoreID, in.CustomerName, *in.Phone)
		if err != nil {
			return nil, err
		}
		customerID = &id
	}

	invoiceID, err := insertInvoice(
		ctx, tx,
		in.StoreID, customerID, in.CustomerName, in.Phone,
		invuc.FormatMoney(finalTotal), in.Discount, in.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}

	// stock pass: lock, check, write item, decrement
	for _, ln := range lines {
		available, err := lockProductQty(ctx, tx, ln.productID, in.StoreID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: %s", invuc.ErrProductNotFound, ln.productID)
			}
			return nil, err
		}
		if available < ln.qty {
			return nil, fmt.Errorf("%w: product=%s available=%d requested=%d",
				invuc.ErrInsufficientStock, ln.productID, available, ln.qty)
		}

		if err := insertInvoiceItem(ctx, tx, invoiceID, ln.productID, ln.qty, ln.unitStr); err != nil {
			return nil, err
		}

		ok, err := deductStock(ctx, tx, ln.productID, in.StoreID, ln.qty)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", invuc.ErrInsufficientStock, ln.productID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &invuc.CreateResult{
		InvoiceID:           invoiceID,
		TotalBeforeDiscount: invuc.FormatMoney(total),
		DiscountPercent:     in.Discount,
		DiscountAmount:      invuc.FormatMoney(discountAmount),
		FinalTotal:          invuc.FormatMoney(finalTotal),
	}, nil
}

func (a *InvoiceStoreAdapter) GetByID(ctx context.Context, id string) (*invuc.Invoice, error) {
	header, err := a.repo.GetHeader(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invuc.ErrNotFound
		}
		return nil, err
	}

	itemRows, err := a.repo.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]invuc.ItemView, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, invuc.ItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Qty:         it.Qty,
			Price:       it.Price,
			Subtotal:    it.Subtotal,
		})
	}

	return &invuc.Invoice{
		ID:            header.ID,
		StoreID:       header.StoreID,
		CustomerName:  header.CustomerName,
		Phone:         header.Phone,
		Total:         header.Total,
		Discount:      header.Discount,
		PaymentMethod: header.PaymentMethod,
		Status:        header.Status,
		CreatedAt:     header.CreatedAt,
		Items:         items,
	}, nil
}

func (a *InvoiceStoreAdapter) ListByStore(ctx context.Context, storeID string) ([]invuc.Summary, error) {
	rows, err := a.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	out := make([]invuc.Summary, 0, len(rows))
	for _, r := range rows {
		out = append(out, invuc.Summary{
			InvoiceID:    r.ID,
			CustomerName: r.CustomerName,
			Total:        r.Total,
			Date:         r.CreatedAt,
		})
	}
	return out, nil
}

func (a *InvoiceStoreAdapter) UpdateStatus(ctx context.Context, id, status string) (*invuc.StatusResult, error) {
	outID, outStatus, err := a.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invuc.ErrNotFound
		}
		return nil, err
	}
	return &invuc.StatusResult{ID: outID, Status: outStatus}, nil
}

// Compile-time check
var _ invuc.Store = (*InvoiceStoreAdapter)(nil)
