package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description,omitempty"`
	Price         float64            `bson:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty"`
	Category      string             `bson:"category,omitempty"`
	Brand         string             `bson:"brand,omitempty"`
	Rating        float64            `bson:"rating"`
	ReviewsCount  int                `bson:"reviews_count"`
	InStock       bool               `bson:"in_stock"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// List applies the filter and paging. The free-text query matches name,
// description, brand, and category case-insensitively.
func (r *ProductRepository) List(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.InStock != nil {
		query["in_stock"] = *filter.InStock
	}
	if filter.Query != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"description": rx},
			bson.M{"brand": rx},
			bson.M{"category": rx},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Page * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	return decodeProducts(ctx, cur)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	p := docToProduct(doc)
	return &p, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []domain.Product{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	return decodeProducts(ctx, cur)
}

func (r *ProductRepository) InsertMany(ctx context.Context, products []domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, productDoc{
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			ImageURL:      p.ImageURL,
			Category:      p.Category,
			Brand:         p.Brand,
			Rating:        p.Rating,
			ReviewsCount:  p.ReviewsCount,
			InStock:       p.InStock,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]domain.Product, error) {
	products := []domain.Product{}
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, docToProduct(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func docToProduct(doc productDoc) domain.Product {
	return domain.Product{
		ID:            doc.ID.Hex(),
		Name:          doc.Name,
		Description:   doc.Description,
		Price:         doc.Price,
		OriginalPrice: doc.OriginalPrice,
		ImageURL:      doc.ImageURL,
		Category:      doc.Category,
		Brand:         doc.Brand,
		Rating:        doc.Rating,
		ReviewsCount:  doc.ReviewsCount,
		InStock:       doc.InStock,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
