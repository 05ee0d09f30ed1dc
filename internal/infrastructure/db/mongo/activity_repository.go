package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopkart/commerce-api/internal/core/domain"
)

const activityCollection = "account_activity"

// ActivityRepository is append-only storage for auth diagnostics.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Kind  string             `bson:"kind"`
	At    time.Time          `bson:"at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.AccountActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activityDoc{
		Email: activity.Email,
		Kind:  string(activity.Kind),
		At:    activity.At,
	})
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
