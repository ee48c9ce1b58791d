package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const lookupWorkers = 8

// LookupJoiner joins with one query per referenced document instead of a
// server-side pipeline. It works on top of any repository implementation.
type LookupJoiner struct {
	Categories Categories
	Products   Products
	Users      Users
}

func (j *LookupJoiner) ProductDetails(ctx context.Context, id primitive.ObjectID) ([]models.ProductDetails, error) {
	p, err := j.Products.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return []models.ProductDetails{}, nil
	}
	if err != nil {
		return nil, err
	}

	var (
		categories []models.Category
		seller     []models.User
	)
	_, err = utils.RunParallelTasks(ctx, []utils.ParallelTask[struct{}]{
		func(ctx context.Context) (struct{}, error) {
			var err error
			categories, err = j.category(ctx, p.Category)
			return struct{}{}, err
		},
		func(ctx context.Context) (struct{}, error) {
			var err error
			seller, err = j.seller(ctx, p.CreatedBy)
			return struct{}{}, err
		},
	})
	if err != nil {
		return nil, err
	}

	return []models.ProductDetails{{
		ProductView: models.ProductView{Product: *p, CategoryInfo: categories},
		Seller:      seller,
	}}, nil
}

func (j *LookupJoiner) Published(ctx context.Context, limit int64) ([]models.ProductView, error) {
	products, err := j.Products.Find(ctx, ProductFilter{AdvertiseStatus: models.AdvertisePublished, Limit: limit})
	if err != nil {
		return nil, err
	}

	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			ids = append(ids, p.Category)
		}
	}

	var (
		mu       sync.Mutex
		firstErr error
	)
	joined := make(map[primitive.ObjectID][]models.Category, len(ids))
	pool := utils.NewWorkerPool(lookupWorkers)
	for _, id := range ids {
		id := id
		pool.AddTask(func() {
			found, err := j.category(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			joined[id] = found
		})
	}
	pool.Wait()
	pool.Close()
	if firstErr != nil {
		return nil, firstErr
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, models.ProductView{Product: p, CategoryInfo: joined[p.Category]})
	}
	return views, nil
}

func (j *LookupJoiner) category(ctx context.Context, id primitive.ObjectID) ([]models.Category, error) {
	c, err := j.Categories.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return []models.Category{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup category %s: %w", id.Hex(), err)
	}
	return []models.Category{*c}, nil
}

func (j *LookupJoiner) seller(ctx context.Context, email string) ([]models.User, error) {
	u, err := j.Users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup seller %s: %w", email, err)
	}
	return []models.User{*u}, nil
}
