package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math"
	"strconv"
)

var (
	ErrInvalidInput     = errors.New("storeId is required")
	ErrStoreNotFound    = errors.New("store not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNoData           = errors.New("no analytics data found for this store")
)

const (
	RangeDaily   = "daily"
	RangeMonthly = "monthly"
)

type Reads interface {
	StoreExists(ctx context.Context, storeID string) (bool, error)
	ListCustomers(ctx context.Context, storeID string) ([]Customer, error)
	CountRepeatCustomers(ctx context.Context, storeID string) (int, error)
	CountNewCustomers(ctx context.Context, storeID string) (int, error)
	AverageInvoiceValue(ctx context.Context, storeID string) (float64, error)
	SpendingTrends(ctx context.Context, storeID string, daily bool) ([]TrendPoint, error)
	TopCustomers(ctx context.Context, storeID string, limit int) ([]TopCustomer, error)
	LoyaltyStats(ctx context.Context, storeID string) (*LoyaltyStats, error)
	CustomerDetails(ctx context.Context, customerCode string) (*CustomerDetails, error)
	ExportRows(ctx context.Context, storeID string) ([]ExportRow, error)
}

type Usecase struct {
	reads Reads
}

func New(reads Reads) *Usecase {
	return &Usecase{reads: reads}
}

func (u *Usecase) requireStore(ctx context.Context, storeID string) error {
	if storeID == "" {
		return ErrInvalidInput
	}
	ok, err := u.reads.StoreExists(ctx, storeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStoreNotFound
	}
	return nil
}

func (u *Usecase) ListCustomers(ctx context.Context, storeID string) ([]Customer, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	return u.reads.ListCustomers(ctx, storeID)
}

func (u *Usecase) RepeatCustomers(ctx context.Context, storeID string) (int, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return 0, err
	}
	return u.reads.CountRepeatCustomers(ctx, storeID)
}

func (u *Usecase) NewCustomers(ctx context.Context, storeID string) (int, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return 0, err
	}
	return u.reads.CountNewCustomers(ctx, storeID)
}

func (u *Usecase) AverageInvoiceValue(ctx context.Context, storeID string) (float64, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return 0, err
	}
	return u.reads.AverageInvoiceValue(ctx, storeID)
}

func (u *Usecase) SpendingTrends(ctx context.Context, storeID, rng string) (*Trends, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	if rng != RangeDaily {
		rng = RangeMonthly
	}

	points, err := u.reads.SpendingTrends(ctx, storeID, rng == RangeDaily)
	if err != nil {
		return nil, err
	}

	out := &Trends{
		StoreID: storeID,
		Range:   rng,
		Labels:  make([]string, 0, len(points)),
		Values:  make([]float64, 0, len(points)),
	}
	for _, p := range points {
		out.Labels = append(out.Labels, p.Label)
		out.Values = append(out.Values, p.Value)
	}
	return out, nil
}

func (u *Usecase) TopCustomers(ctx context.Context, storeID string, limit int) ([]TopCustomer, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 5
	}
	return u.reads.TopCustomers(ctx, storeID, limit)
}

func (u *Usecase) LoyaltyInsights(ctx context.Context, storeID string) (*LoyaltyInsights, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	stats, err := u.reads.LoyaltyStats(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return &LoyaltyInsights{
		LoyaltyScore:     LoyaltyScore(stats.RepeatCustomers, stats.TotalCustomers),
		FrequencyScore:   FrequencyScore(stats.AvgFrequency),
		AvgOrderInterval: int(math.Round(stats.AvgIntervalDays)),
	}, nil
}

func (u *Usecase) CustomerDetails(ctx context.Context, customerCode string) (*CustomerDetails, error) {
	if customerCode == "" {
		return nil, ErrInvalidInput
	}
	return u.reads.CustomerDetails(ctx, customerCode)
}

// ExportCSV renders the per-customer order/spend summary as CSV.
func (u *Usecase) ExportCSV(ctx context.Context, storeID string) ([]byte, error) {
	if err := u.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	rows, err := u.reads.ExportRows(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Customer Name", "Phone", "Total Orders", "Total Spent", "Last Purchase"})
	for _, r := range rows {
		phone := ""
		if r.Phone != nil {
			phone = *r.Phone
		}
		last := ""
		if r.LastPurchase != nil {
			last = r.LastPurchase.UTC().Format("2006-01-02 15:04:05")
		}
		_ = w.Write([]string{r.CustomerName, phone, strconv.Itoa(r.TotalOrders), r.TotalSpent, last})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoyaltyScore is the share of repeat customers, 0-100.
func LoyaltyScore(repeat, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(repeat) / float64(total) * 100))
}

// FrequencyScore scales average invoices-per-customer onto 0-100.
func FrequencyScore(avgFrequency float64) int {
	score := int(math.Round(avgFrequency * 20))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
