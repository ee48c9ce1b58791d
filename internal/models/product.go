package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdvertiseNotPublished = "not published"
	AdvertisePublished    = "published"

	SaleNotSold = "not sold"
	SaleSold    = "sold"
)

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	ResalePrice     float64            `bson:"resalePrice" json:"resalePrice"`
	OriginalPrice   float64            `bson:"originalPrice" json:"originalPrice"`
	ImgURL          string             `bson:"imgUrl" json:"imgUrl"`
	Condition       string             `bson:"condition" json:"condition"`
	SellerContact   string             `bson:"sellerContact" json:"sellerContact"`
	Location        string             `bson:"location" json:"location"`
	Category        primitive.ObjectID `bson:"category" json:"category"`
	Description     string             `bson:"description" json:"description"`
	CreatedBy       string             `bson:"createdBy" json:"createdBy"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	AdvertiseStatus string             `bson:"advertiseStatus" json:"advertiseStatus"`
	SaleStatus      string             `bson:"saleStatus" json:"saleStatus"`
}

// ProductView is a product left-joined with its category.
type ProductView struct {
	Product      `bson:",inline"`
	CategoryInfo []Category `bson:"categoryInfo" json:"categoryInfo"`
}

// ProductDetails also joins the user that created the product. Seller is
// empty, never absent, when the creator has no user document.
type ProductDetails struct {
	ProductView `bson:",inline"`
	Seller      []User `bson:"seller" json:"seller"`
}

// CategoryProducts is the response of the category listing page.
type CategoryProducts struct {
	Category *Category `json:"category"`
	Products []Product `json:"products"`
}
