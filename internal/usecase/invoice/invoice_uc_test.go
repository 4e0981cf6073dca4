package invoice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	createIn    *CreateInput
	lastStatus  string
	lastID      string
	createErr   error
	createOut   *CreateResult
	statusCalls int
}

func (f *fakeStore) Create(_ context.Context, in CreateInput) (*CreateResult, error) {
	f.createIn = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &CreateResult{InvoiceID: "inv-1"}, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Invoice, error) {
	return &Invoice{ID: id}, nil
}

func (f *fakeStore) ListByStore(_ context.Context, storeID string) ([]Summary, error) {
	return nil, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id, status string) (*StatusResult, error) {
	f.statusCalls++
	f.lastID = id
	f.lastStatus = status
	return &StatusResult{ID: id, Status: status}, nil
}

func validInput() CreateInput {
	return CreateInput{
		StoreID:       "store-1",
		CustomerName:  "Asha",
		Items:         []CartLine{{ProductID: "prod-1", Qty: 2}},
		PaymentMethod: "cash",
	}
}

func TestCreate_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing store", func(in *CreateInput) { in.StoreID = "" }},
		{"missing customer name", func(in *CreateInput) { in.CustomerName = "" }},
		{"empty cart", func(in *CreateInput) { in.Items = nil }},
		{"missing payment method", func(in *CreateInput) { in.PaymentMethod = "" }},
		{"zero qty", func(in *CreateInput) { in.Items[0].Qty = 0 }},
		{"negative qty", func(in *CreateInput) { in.Items[0].Qty = -1 }},
		{"missing product id", func(in *CreateInput) { in.Items[0].ProductID = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeStore{}
			uc := New(fs)

			in := validInput()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Nil(t, fs.createIn, "store must not be called on invalid input")
		})
	}
}

func TestCreate_NormalizesDiscount(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{150, 0},
		{0, 0},
		{10, 10},
		{100, 100},
	} {
		fs := &fakeStore{}
		uc := New(fs)

		in := validInput()
		in.Discount = tc.in
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, tc.want, fs.createIn.Discount, "discount %v", tc.in)
	}
}

func TestUpdateStatus_CaseFolding(t *testing.T) {
	fs := &fakeStore{}
	uc := New(fs)

	res, err := uc.UpdateStatus(context.Background(), "inv-1", UpdateStatusInput{Status: "PAID"})
	require.NoError(t, err)
	require.Equal(t, StatusPaid, res.Status)
	require.Equal(t, "inv-1", fs.lastID)
}

func TestUpdateStatus_RejectsUnknown(t *testing.T) {
	fs := &fakeStore{}
	uc := New(fs)

	for _, status := range []string{"", "completed", "cancelled", "PAID "} {
		_, err := uc.UpdateStatus(context.Background(), "inv-1", UpdateStatusInput{Status: status})
		require.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
	require.Zero(t, fs.statusCalls)
}

func TestGetByID_EmptyID(t *testing.T) {
	uc := New(&fakeStore{})
	_, err := uc.GetByID(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyDiscount(t *testing.T) {
	total := decimal.RequireFromString("200.00")

	amount, final := ApplyDiscount(total, 10)
	require.Equal(t, "20.00", FormatMoney(amount))
	require.Equal(t, "180.00", FormatMoney(final))

	amount, final = ApplyDiscount(total, 0)
	require.Equal(t, "0.00", FormatMoney(amount))
	require.Equal(t, "200.00", FormatMoney(final))

	// rounding: 33.33% of 100 is 33.33, not 33.330000...
	amount, final = ApplyDiscount(decimal.RequireFromString("100.00"), 33.33)
	require.Equal(t, "33.33", FormatMoney(amount))
	require.Equal(t, "66.67", FormatMoney(final))

	amount, final = ApplyDiscount(total, 100)
	require.Equal(t, "200.00", FormatMoney(amount))
	require.True(t, final.IsZero())
}
