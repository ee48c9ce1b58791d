package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(store.UsersCollection)}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// Insert relies on the unique email index created by db.EnsureIndexes.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) (models.InsertAck, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return models.InsertAck{}, store.ErrDuplicate
	}
	if err != nil {
		return models.InsertAck{}, fmt.Errorf("insert user: %w", err)
	}
	return models.InsertAck{Acknowledged: true, InsertedID: u.ID}, nil
}

func (r *UserRepository) FindByType(ctx context.Context, userType string) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userType": userType})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
