package store

import (
	"context"
	"errors"

	"github.com/retocart/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

const (
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
	UsersCollection      = "users"
	OrdersCollection     = "orders"
)

type Categories interface {
	Insert(ctx context.Context, c *models.Category) (models.InsertAck, error)
	// List returns every category, newest first.
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
}

// ProductFilter narrows Products.Find. Zero values match everything.
type ProductFilter struct {
	Category        *primitive.ObjectID
	CreatedBy       string
	AdvertiseStatus string
	Limit           int64
}

type Products interface {
	Insert(ctx context.Context, p *models.Product) (models.InsertAck, error)
	// Find returns matching products, newest first.
	Find(ctx context.Context, f ProductFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// Update sets the given document keys on one product.
	Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (models.UpdateAck, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error)
}

type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Insert fails with ErrDuplicate when the email is taken.
	Insert(ctx context.Context, u *models.User) (models.InsertAck, error)
	FindByType(ctx context.Context, userType string) ([]models.User, error)
}

// Joiner resolves products together with the documents they reference.
type Joiner interface {
	// ProductDetails returns zero or one product joined with its category and creator.
	ProductDetails(ctx context.Context, id primitive.ObjectID) ([]models.ProductDetails, error)
	// Published returns published products joined with their category,
	// newest first. limit <= 0 means no limit.
	Published(ctx context.Context, limit int64) ([]models.ProductView, error)
}

// Store bundles the repositories of one driver.
type Store struct {
	Categories Categories
	Products   Products
	Users      Users
	Joiner     Joiner
}
