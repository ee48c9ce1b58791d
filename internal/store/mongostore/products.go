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

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection(store.ProductsCollection)}
}

func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) (models.InsertAck, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		return models.InsertAck{}, fmt.Errorf("insert product: %w", err)
	}
	return models.InsertAck{Acknowledged: true, InsertedID: p.ID}, nil
}

// productQuery translates a filter into a find document.
func productQuery(f store.ProductFilter) bson.M {
	query := bson.M{}
	if f.Category != nil {
		query["category"] = *f.Category
	}
	if f.CreatedBy != "" {
		query["createdBy"] = f.CreatedBy
	}
	if f.AdvertiseStatus != "" {
		query["advertiseStatus"] = f.AdvertiseStatus
	}
	return query
}

func (r *ProductRepository) Find(ctx context.Context, f store.ProductFilter) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, productQuery(f), findNewestFirst(f.Limit))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (models.UpdateAck, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return models.UpdateAck{}, fmt.Errorf("update product: %w", err)
	}
	return models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteAck{}, fmt.Errorf("delete product: %w", err)
	}
	return models.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
