package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderItemDoc struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
	ImageURL  string  `bson:"image_url,omitempty"`
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID string             `bson:"account_id"`
	Status    string             `bson:"status"`
	Items     []orderItemDoc     `bson:"items"`
	Total     float64            `bson:"total"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *OrderRepository) ListByAccount(ctx context.Context, accountID string, filter ports.OrderFilter) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"account_id": accountID}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Page * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []domain.Order{}
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, docToOrder(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// FindByID filters on both id and account, so another account's order is
// indistinguishable from a missing one.
func (r *OrderRepository) FindByID(ctx context.Context, accountID, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var doc orderDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "account_id": accountID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	order := docToOrder(doc)
	return &order, nil
}

func docToOrder(doc orderDoc) domain.Order {
	items := make([]domain.OrderItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		})
	}
	return domain.Order{
		ID:        doc.ID.Hex(),
		AccountID: doc.AccountID,
		Status:    domain.OrderStatus(doc.Status),
		Items:     items,
		Total:     doc.Total,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
