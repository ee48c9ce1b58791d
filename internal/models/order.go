package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order mirrors the orders collection. No route reads or writes it yet.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID  primitive.ObjectID `bson:"productId" json:"productId"`
	BuyerEmail string             `bson:"buyerEmail" json:"buyerEmail"`
	Price      float64            `bson:"price" json:"price"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
