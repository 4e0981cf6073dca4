package invoice

import "time"

type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type CreateInput struct {
	StoreID       string     `json:"storeId"`
	CustomerName  string     `json:"customerName"`
	Phone         *string    `json:"phone"`
	Items         []CartLine `json:"items"`
	PaymentMethod string     `json:"paymentMethod"`
	Discount      float64    `json:"discount"`
}

type CreateResult struct {
	InvoiceID           string  `json:"invoiceId"`
	TotalBeforeDiscount string  `json:"totalBeforeDiscount"`
	DiscountPercent     float64 `json:"discountPercent"`
	DiscountAmount      string  `json:"discountAmount"`
	FinalTotal          string  `json:"finalTotal"`
}

type Invoice struct {
	ID            string     `json:"invoiceId"`
	StoreID       string     `json:"storeId"`
	CustomerName  string     `json:"customerName"`
	Phone         *string    `json:"phone,omitempty"`
	Total         string     `json:"total"`
	Discount      string     `json:"discount"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	Items         []ItemView `json:"items"`
}

type ItemView struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Qty         int    `json:"qty"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
}

type Summary struct {
	InvoiceID    string    `json:"invoiceId"`
	CustomerName string    `json:"customerName"`
	Total        string    `json:"total"`
	Date         time.Time `json:"date"`
}

type StatusResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}
