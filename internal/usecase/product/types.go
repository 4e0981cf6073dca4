package product

type Product struct {
	ID       string  `json:"productId"`
	StoreID  string  `json:"storeId"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    string  `json:"price"`
	Quantity int     `json:"quantity"`
	Category *string `json:"category,omitempty"`
	Unit     *string `json:"unit,omitempty"`
}

type CreateInput struct {
	StoreID  string  `json:"storeId"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category *string `json:"category"`
	Unit     *string `json:"unit"`
}

type UpdateInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"`
}

type AdjustStockInput struct {
	QuantityChange *int `json:"quantityChange"`
}
