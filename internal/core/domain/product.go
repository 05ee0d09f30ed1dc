package domain

import "time"

// Product is a catalog entry. Prices are stored in the catalog currency with
// two-decimal precision.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Category      string    `json:"category,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewsCount  int       `json:"reviews_count"`
	InStock       bool      `json:"in_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
