package analytics

import "time"

type Customer struct {
	ID           string    `json:"customerId"`
	CustomerCode string    `json:"customerCode"`
	CustomerName string    `json:"customerName"`
	Phone        *string   `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TrendPoint struct {
	Label string
	Value float64
}

type Trends struct {
	StoreID string    `json:"storeId"`
	Range   string    `json:"range"`
	Labels  []string  `json:"labels"`
	Values  []float64 `json:"values"`
}

type TopCustomer struct {
	CustomerID   string    `json:"customerId"`
	Name         string    `json:"name"`
	TotalSpent   float64   `json:"totalSpent"`
	Orders       int       `json:"orders"`
	LastPurchase time.Time `json:"lastPurchase"`
}

type LoyaltyInsights struct {
	LoyaltyScore     int `json:"loyaltyScore"`
	FrequencyScore   int `json:"frequencyScore"`
	AvgOrderInterval int `json:"avgOrderInterval"`
}

// LoyaltyStats are the raw aggregates the scores derive from.
type LoyaltyStats struct {
	TotalCustomers  int
	RepeatCustomers int
	AvgFrequency    float64
	AvgIntervalDays float64
}

type CustomerDetails struct {
	Name         string     `json:"name"`
	Contact      *string    `json:"contact,omitempty"`
	TotalSpent   float64    `json:"totalSpent"`
	Orders       int        `json:"orders"`
	LastPurchase *time.Time `json:"lastPurchase,omitempty"`
}

type ExportRow struct {
	CustomerName string
	Phone        *string
	TotalOrders  int
	TotalSpent   string
	LastPurchase *time.Time
}
