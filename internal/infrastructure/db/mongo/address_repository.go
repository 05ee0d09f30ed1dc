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
)

const addressesCollection = "addresses"

type AddressRepository struct {
	coll *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{coll: db.Collection(addressesCollection)}
}

type addressDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AccountID   string             `bson:"account_id"`
	Type        string             `bson:"type"`
	Name        string             `bson:"name"`
	Phone       string             `bson:"phone,omitempty"`
	AddressLine string             `bson:"address_line"`
	City        string             `bson:"city"`
	State       string             `bson:"state"`
	Pincode     string             `bson:"pincode"`
	IsDefault   bool               `bson:"is_default"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *AddressRepository) Create(ctx context.Context, addr *domain.Address) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, addressToDoc(addr))
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	created := *addr
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Update rewrites the writable fields of an address the account owns.
func (r *AddressRepository) Update(ctx context.Context, addr *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(addr.ID)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "account_id": addr.AccountID},
		bson.M{"$set": bson.M{
			"type":         addr.Type,
			"name":         addr.Name,
			"phone":        addr.Phone,
			"address_line": addr.AddressLine,
			"city":         addr.City,
			"state":        addr.State,
			"pincode":      addr.Pincode,
			"is_default":   addr.IsDefault,
			"updated_at":   addr.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, accountID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAddressNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "account_id": accountID})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, accountID, id string) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAddressNotFound
	}

	var doc addressDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "account_id": accountID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}

	addr := docToAddress(doc)
	return &addr, nil
}

func (r *AddressRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "is_default", Value: -1}, {Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cur.Close(ctx)

	addresses := []domain.Address{}
	for cur.Next(ctx) {
		var doc addressDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode address: %w", err)
		}
		addresses = append(addresses, docToAddress(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return addresses, nil
}

func (r *AddressRepository) ClearDefault(ctx context.Context, accountID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateMany(ctx,
		bson.M{"account_id": accountID, "is_default": true},
		bson.M{"$set": bson.M{"is_default": false}},
	)
	if err != nil {
		return fmt.Errorf("clear default address: %w", err)
	}
	return nil
}

func addressToDoc(addr *domain.Address) addressDoc {
	return addressDoc{
		AccountID:   addr.AccountID,
		Type:        addr.Type,
		Name:        addr.Name,
		Phone:       addr.Phone,
		AddressLine: addr.AddressLine,
		City:        addr.City,
		State:       addr.State,
		Pincode:     addr.Pincode,
		IsDefault:   addr.IsDefault,
		CreatedAt:   addr.CreatedAt,
		UpdatedAt:   addr.UpdatedAt,
	}
}

func docToAddress(doc addressDoc) domain.Address {
	return domain.Address{
		ID:          doc.ID.Hex(),
		AccountID:   doc.AccountID,
		Type:        doc.Type,
		Name:        doc.Name,
		Phone:       doc.Phone,
		AddressLine: doc.AddressLine,
		City:        doc.City,
		State:       doc.State,
		Pincode:     doc.Pincode,
		IsDefault:   doc.IsDefault,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
