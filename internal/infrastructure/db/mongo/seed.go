package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

// SeedProducts populates the catalog with demo inventory when it is empty,
// so a fresh install has something to browse. It is a no-op on any
// non-empty catalog.
func SeedProducts(ctx context.Context, db *mongo.Database) (int, error) {
	repo := NewProductRepository(db)

	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	products := []domain.Product{
		{
			Name:          "iPhone 15 Pro Max",
			Description:   "Latest iPhone with A17 Pro chip, titanium design, and advanced camera system",
			Price:         1299.00,
			OriginalPrice: 1399.00,
			ImageURL:      "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=500",
			Category:      "Electronics",
			Brand:         "Apple",
			Rating:        4.7,
			ReviewsCount:  2140,
			InStock:       true,
		},
		{
			Name:         "Samsung Galaxy S24 Ultra",
			Description:  "Premium Android smartphone with S Pen, 200MP camera, and AI features",
			Price:        1199.00,
			ImageURL:     "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500",
			Category:     "Electronics",
			Brand:        "Samsung",
			Rating:       4.6,
			ReviewsCount: 1820,
			InStock:      true,
		},
		{
			Name:         "MacBook Pro 16\"",
			Description:  "Powerful laptop with M3 Pro chip, perfect for professionals",
			Price:        2399.00,
			ImageURL:     "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=500",
			Category:     "Electronics",
			Brand:        "Apple",
			Rating:       4.8,
			ReviewsCount: 960,
			InStock:      true,
		},
		{
			Name:         "Sony WH-1000XM5",
			Description:  "Industry-leading noise canceling wireless headphones",
			Price:        349.00,
			ImageURL:     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Category:     "Electronics",
			Brand:        "Sony",
			Rating:       4.5,
			ReviewsCount: 3310,
			InStock:      true,
		},
		{
			Name:         "Nike Air Max 270",
			Description:  "Comfortable running shoes with Max Air cushioning",
			Price:        150.00,
			ImageURL:     "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Category:     "Fashion",
			Brand:        "Nike",
			Rating:       4.4,
			ReviewsCount: 5120,
			InStock:      true,
		},
		{
			Name:         "Levi's 501 Original Jeans",
			Description:  "Classic straight-leg jeans, the original blue jean since 1873",
			Price:        89.00,
			ImageURL:     "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500",
			Category:     "Fashion",
			Brand:        "Levi's",
			Rating:       4.3,
			ReviewsCount: 2780,
			InStock:      true,
		},
		{
			Name:         "Instant Pot Duo 7-in-1",
			Description:  "Multi-functional pressure cooker, slow cooker, rice cooker, and more",
			Price:        99.00,
			ImageURL:     "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=500",
			Category:     "Home",
			Brand:        "Instant Pot",
			Rating:       4.6,
			ReviewsCount: 8450,
			InStock:      true,
		},
		{
			Name:         "Dyson V15 Detect",
			Description:  "Powerful cordless vacuum with laser dust detection",
			Price:        749.00,
			ImageURL:     "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500",
			Category:     "Home",
			Brand:        "Dyson",
			Rating:       4.5,
			ReviewsCount: 1230,
			InStock:      false,
		},
		{
			Name:         "The Psychology of Money",
			Description:  "Timeless lessons on wealth, greed, and happiness by Morgan Housel",
			Price:        15.99,
			ImageURL:     "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=500",
			Category:     "Books",
			Brand:        "Harriman House",
			Rating:       4.7,
			ReviewsCount: 10400,
			InStock:      true,
		},
	}
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}

	if err := repo.InsertMany(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}
