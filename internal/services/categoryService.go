package services

import (
	"context"
	"errors"
	"time"

	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService struct {
	categories store.Categories
	products   store.Products
	now        func() time.Time
}

func NewCategoryService(categories store.Categories, products store.Products) *CategoryService {
	return &CategoryService{categories: categories, products: products, now: time.Now}
}

// Create stores the category with every extra field as given and a server
// creation timestamp.
func (s *CategoryService) Create(ctx context.Context, name string, fields map[string]interface{}) (models.InsertAck, error) {
	c := &models.Category{
		Name:      name,
		Fields:    fields,
		CreatedAt: s.now(),
	}
	return s.categories.Insert(ctx, c)
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// CategoryProducts returns the category and its published products, newest
// first. An unknown id yields a nil category and no products.
func (s *CategoryService) CategoryProducts(ctx context.Context, id primitive.ObjectID) (models.CategoryProducts, error) {
	out := models.CategoryProducts{Products: []models.Product{}}

	c, err := s.categories.FindByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return models.CategoryProducts{}, err
	default:
		out.Category = c
	}

	products, err := s.products.Find(ctx, store.ProductFilter{Category: &id, AdvertiseStatus: models.AdvertisePublished})
	if err != nil {
		return models.CategoryProducts{}, err
	}
	out.Products = products
	return out, nil
}
