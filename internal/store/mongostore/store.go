package mongostore

import (
	"github.com/retocart/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// New wires MongoDB repositories and the aggregation-pipeline joiner over db.
func New(db *mongo.Database) *store.Store {
	return &store.Store{
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
		Users:      NewUserRepository(db),
		Joiner:     NewPipelineJoiner(db),
	}
}

// newestFirst breaks createdAt ties by _id so the latest insert comes first.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func findNewestFirst(limit int64) *options.FindOptions {
	opts := options.Find().SetSort(newestFirst)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
