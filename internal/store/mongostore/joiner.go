package mongostore

import (
	"context"
	"fmt"

	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PipelineJoiner resolves joins server-side with $lookup stages.
type PipelineJoiner struct {
	products *mongo.Collection
}

func NewPipelineJoiner(db *mongo.Database) *PipelineJoiner {
	return &PipelineJoiner{products: db.Collection(store.ProductsCollection)}
}

var (
	categoryLookup = bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: store.CategoriesCollection},
		{Key: "localField", Value: "category"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "categoryInfo"},
	}}}
	sellerLookup = bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: store.UsersCollection},
		{Key: "localField", Value: "createdBy"},
		{Key: "foreignField", Value: "email"},
		{Key: "as", Value: "seller"},
	}}}
)

func detailsPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		categoryLookup,
		sellerLookup,
	}
}

// publishedPipeline sorts and limits before joining so only returned
// products pay for the lookup.
func publishedPipeline(limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"advertiseStatus": models.AdvertisePublished}}},
		{{Key: "$sort", Value: newestFirst}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return append(pipeline, categoryLookup)
}

func (j *PipelineJoiner) ProductDetails(ctx context.Context, id primitive.ObjectID) ([]models.ProductDetails, error) {
	return aggregate[models.ProductDetails](ctx, j.products, detailsPipeline(id))
}

func (j *PipelineJoiner) Published(ctx context.Context, limit int64) ([]models.ProductView, error) {
	return aggregate[models.ProductView](ctx, j.products, publishedPipeline(limit))
}

func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cursor.Close(ctx)

	views := []T{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return views, nil
}
