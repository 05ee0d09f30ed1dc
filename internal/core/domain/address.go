package domain

import "time"

// Address is a delivery address in an account's address book. At most one
// address per account carries IsDefault.
type Address struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	AddressLine string    `json:"address_line"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WishlistItem links an account to a saved product.
type WishlistItem struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
