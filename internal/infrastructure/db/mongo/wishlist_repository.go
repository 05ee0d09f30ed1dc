package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

const wishlistCollection = "wishlist_items"

// WishlistRepository implements ports.WishlistRepository. One entry per
// (account, product) pair is enforced by the compound unique index.
type WishlistRepository struct {
	coll *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{coll: db.Collection(wishlistCollection)}
}

type wishlistDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID string             `bson:"account_id"`
	ProductID string             `bson:"product_id"`
	AddedAt   time.Time          `bson:"added_at"`
}

func (r *WishlistRepository) Add(ctx context.Context, item *domain.WishlistItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, wishlistDoc{
		AccountID: item.AccountID,
		ProductID: item.ProductID,
		AddedAt:   item.AddedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrWishlistDuplicate
		}
		return fmt.Errorf("insert wishlist item: %w", err)
	}
	return nil
}

func (r *WishlistRepository) Remove(ctx context.Context, accountID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"account_id": accountID, "product_id": productID})
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWishlistNotFound
	}
	return nil
}

func (r *WishlistRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.WishlistItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.WishlistItem{}
	for cur.Next(ctx) {
		var doc wishlistDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode wishlist item: %w", err)
		}
		items = append(items, domain.WishlistItem{
			ID:        doc.ID.Hex(),
			AccountID: doc.AccountID,
			ProductID: doc.ProductID,
			AddedAt:   doc.AddedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist: %w", err)
	}
	return items, nil
}
