package store

import "time"

type Store struct {
	ID             string    `json:"storeId"`
	StoreName      string    `json:"storeName"`
	OwnerName      *string   `json:"ownerName,omitempty"`
	TypeOfBusiness *string   `json:"typeOfBusiness,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	GSTNumber      *string   `json:"gstNumber,omitempty"`
	Address        *string   `json:"address,omitempty"`
	Pincode        *string   `json:"pincode,omitempty"`
	LogoURL        *string   `json:"logoUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type RegisterInput struct {
	StoreName      string  `json:"storeName"`
	OwnerName      *string `json:"ownerName"`
	TypeOfBusiness *string `json:"typeOfBusiness"`
	Email          *string `json:"email"`
	Phone          string  `json:"phone"`
	GSTNumber      *string `json:"gstNumber"`
	Address        *string `json:"address"`
	Pincode        *string `json:"pincode"`
	LogoURL        *string `json:"logoUrl"`
}

type RegisterResult struct {
	StoreID string `json:"storeId"`
	APIKey  string `json:"apiKey"`
}

type UpdateInput struct {
	StoreName      *string `json:"storeName"`
	OwnerName      *string `json:"ownerName"`
	TypeOfBusiness *string `json:"typeOfBusiness"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	GSTNumber      *string `json:"gstNumber"`
	Address        *string `json:"address"`
	Pincode        *string `json:"pincode"`
	LogoURL        *string `json:"logoUrl"`
}
