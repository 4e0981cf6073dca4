package postgres

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/repository/postgres/testutil"
	invuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/invoice"
)

// This test validates the happy path end to end:
// price 100 x qty 2, 10% discount => 200 / 20 / 180, stock 5 -> 3,
// and the persisted header carries the discounted total.
func TestInvoice_Create_WithDiscount(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 5)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	phone := "9876543210"
	out, err := uc.Create(context.Background(), invuc.CreateInput{
		StoreID:       storeID,
		CustomerName:  "Asha",
		Phone:         &phone,
		Items:         []invuc.CartLine{{ProductID: productID, Qty: 2}},
		PaymentMethod: "upi",
		Discount:      10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.InvoiceID)
	require.Equal(t, "200.00", out.TotalBeforeDiscount)
	require.Equal(t, float64(10), out.DiscountPercent)
	require.Equal(t, "20.00", out.DiscountAmount)
	require.Equal(t, "180.00", out.FinalTotal)

	require.Equal(t, 3, testutil.ProductQuantity(t, db, productID))

	inv, err := uc.GetByID(context.Background(), out.InvoiceID)
	require.NoError(t, err)
	require.Equal(t, "180.00", inv.Total)
	require.Equal(t, invuc.StatusCompleted, inv.Status)
	require.Len(t, inv.Items, 1)
	require.Equal(t, "Soap Bar", inv.Items[0].ProductName)
	require.Equal(t, 2, inv.Items[0].Qty)
	require.Equal(t, "100.00", inv.Items[0].Price)
	require.Equal(t, "200.00", inv.Items[0].Subtotal)

	// phone on the invoice links a customer record for analytics
	require.Equal(t, 1, testutil.CountRows(t, db, "customers"))
}

// Client-supplied prices must never survive JSON decoding: totals always come
// from the catalog.
func TestInvoice_Create_IgnoresClientPrice(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 5)

	body := `{
		"storeId": "` + storeID + `",
		"customerName": "Asha",
		"items": [{"productId": "` + productID + `", "qty": 1, "price": 0.01}],
		"paymentMethod": "cash"
	}`
	var in invuc.CreateInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "100.00", out.FinalTotal)
}

// Unknown product aborts the whole transaction: no header, no items, no
// stock movement.
func TestInvoice_Create_ProductMissing_RollsBack(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 5)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	_, err := uc.Create(context.Background(), invuc.CreateInput{
		StoreID:      storeID,
		CustomerName: "Asha",
		Items: []invuc.CartLine{
			{ProductID: productID, Qty: 1},
			{ProductID: "00000000-0000-0000-0000-000000000000", Qty: 1},
		},
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, invuc.ErrProductNotFound)

	require.Equal(t, 0, testutil.CountRows(t, db, "invoices"))
	require.Equal(t, 0, testutil.CountRows(t, db, "invoice_items"))
	require.Equal(t, 5, testutil.ProductQuantity(t, db, productID))
}

// A product from another store must not resolve.
func TestInvoice_Create_CrossStoreProduct_NotFound(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeA := testutil.MustInsertStore(t, db, "Store A")
	storeB := testutil.MustInsertStore(t, db, "Store B")
	foreign := testutil.MustInsertProduct(t, db, storeB, "Soap Bar", "SKU-001", "100.00", 5)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	_, err := uc.Create(context.Background(), invuc.CreateInput{
		StoreID:       storeA,
		CustomerName:  "Asha",
		Items:         []invuc.CartLine{{ProductID: foreign, Qty: 1}},
		PaymentMethod: "cash",
	})
	require.ErrorIs(t, err, invuc.ErrProductNotFound)
}

// Requesting more than available fails with InsufficientStock and leaves the
// product untouched.
func TestInvoice_Create_InsufficientStock_RollsBack(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 1)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	_, err := uc.Create(context.Background(), invuc.CreateInput{
		StoreID:       storeID,
		CustomerName:  "Asha",
		Items:         []invuc.CartLine{{ProductID: productID, Qty: 2}},
		PaymentMethod: "cash",
		Discount:      10,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, invuc.ErrInsufficientStock)

	require.Equal(t, 1, testutil.ProductQuantity(t, db, productID))
	require.Equal(t, 0, testutil.CountRows(t, db, "invoices"))
	require.Equal(t, 0, testutil.CountRows(t, db, "invoice_items"))
}

// Two concurrent invoices over a product with quantity 1: exactly one may
// win; the row lock in the stock pass decides, never both.
func TestInvoice_Create_ConcurrentOversell(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 1)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	in := invuc.CreateInput{
		StoreID:       storeID,
		CustomerName:  "Asha",
		Items:         []invuc.CartLine{{ProductID: productID, Qty: 1}},
		PaymentMethod: "cash",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(context.Background(), in)
		}(i)
	}
	wg.Wait()

	var succeeded, failed int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, invuc.ErrInsufficientStock)
			failed++
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, failed)
	require.Equal(t, 0, testutil.ProductQuantity(t, db, productID))
	require.Equal(t, 1, testutil.CountRows(t, db, "invoices"))
}

// Repeat purchases from the same phone reuse the existing customer record;
// the original customer_code survives and only the name refreshes.
func TestInvoice_Create_CustomerReusedByPhone(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 10)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	phone := "9876543210"
	in := invuc.CreateInput{
		StoreID:       storeID,
		CustomerName:  "Asha",
		Phone:         &phone,
		Items:         []invuc.CartLine{{ProductID: productID, Qty: 1}},
		PaymentMethod: "cash",
	}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	var firstCode string
	require.NoError(t, db.QueryRow(context.Background(),
		`SELECT customer_code FROM customers WHERE store_id = $1::uuid AND phone = $2`,
		storeID, phone).Scan(&firstCode))

	in.CustomerName = "Asha K"
	_, err = uc.Create(context.Background(), in)
	require.NoError(t, err)

	require.Equal(t, 1, testutil.CountRows(t, db, "customers"))

	var code, name string
	require.NoError(t, db.QueryRow(context.Background(),
		`SELECT customer_code, customer_name FROM customers WHERE store_id = $1::uuid AND phone = $2`,
		storeID, phone).Scan(&code, &name))
	require.Equal(t, firstCode, code)
	require.Equal(t, "Asha K", name)

	var linked int
	require.NoError(t, db.QueryRow(context.Background(),
		`SELECT COUNT(DISTINCT customer_id) FROM invoices WHERE store_id = $1::uuid`,
		storeID).Scan(&linked))
	require.Equal(t, 1, linked)
}

func TestInvoice_UpdateStatus(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "100.00", 5)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	out, err := uc.Create(context.Background(), invuc.CreateInput{
		StoreID:       storeID,
		CustomerName:  "Asha",
		Items:         []invuc.CartLine{{ProductID: productID, Qty: 1}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	// case-insensitive status input
	res, err := uc.UpdateStatus(context.Background(), out.InvoiceID, invuc.UpdateStatusInput{Status: "PAID"})
	require.NoError(t, err)
	require.Equal(t, invuc.StatusPaid, res.Status)

	// reapplying the other terminal state is allowed
	res, err = uc.UpdateStatus(context.Background(), out.InvoiceID, invuc.UpdateStatusInput{Status: "unpaid"})
	require.NoError(t, err)
	require.Equal(t, invuc.StatusUnpaid, res.Status)
}

func TestInvoice_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	_, err := uc.UpdateStatus(context.Background(),
		"00000000-0000-0000-0000-000000000000",
		invuc.UpdateStatusInput{Status: "paid"},
	)
	require.ErrorIs(t, err, invuc.ErrNotFound)
}

func TestInvoice_ListByStore(t *testing.T) {
	db := testutil.MustOpenDB(t)
	defer db.Close()
	testutil.TruncateAll(t, db)

	storeID := testutil.MustInsertStore(t, db, "Corner Mart")
	productID := testutil.MustInsertProduct(t, db, storeID, "Soap Bar", "SKU-001", "50.00", 10)

	uc := invuc.New(NewInvoiceStoreAdapter(NewInvoiceRepo(db)))

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), invuc.CreateInput{
			StoreID:       storeID,
			CustomerName:  "Asha",
			Items:         []invuc.CartLine{{ProductID: productID, Qty: 1}},
			PaymentMethod: "cash",
		})
		require.NoError(t, err)
	}

	out, err := uc.ListByStore(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "50.00", out[0].Total)
}
