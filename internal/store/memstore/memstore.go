// Package memstore is a process-local document store used for development
// and tests. Documents are copied in and out so callers never share memory
// with the store.
package memstore

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type db struct {
	mu         sync.RWMutex
	categories []models.Category
	products   []models.Product
	users      []models.User
}

// New returns an empty store wired with the lookup joiner.
func New() *store.Store {
	d := &db{}
	cats := &categoryRepo{db: d}
	prods := &productRepo{db: d}
	users := &userRepo{db: d}
	return &store.Store{
		Categories: cats,
		Products:   prods,
		Users:      users,
		Joiner:     &store.LookupJoiner{Categories: cats, Products: prods, Users: users},
	}
}

// newestFirst returns indexes of items ordered by createdAt descending;
// equal timestamps keep the most recently inserted item first.
func newestFirst(n int, createdAt func(i int) int64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = n - 1 - i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return createdAt(idx[a]) > createdAt(idx[b])
	})
	return idx
}

type categoryRepo struct{ db *db }

func (r *categoryRepo) Insert(_ context.Context, c *models.Category) (models.InsertAck, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	cp := copyCategory(*c)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.categories = append(r.db.categories, cp)
	return models.InsertAck{Acknowledged: true, InsertedID: c.ID}, nil
}

func (r *categoryRepo) List(_ context.Context) ([]models.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := r.db.categories
	out := make([]models.Category, 0, len(all))
	for _, i := range newestFirst(len(all), func(i int) int64 { return all[i].CreatedAt.UnixNano() }) {
		out = append(out, copyCategory(all[i]))
	}
	return out, nil
}

func (r *categoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.categories {
		if c.ID == id {
			cp := copyCategory(c)
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func copyCategory(c models.Category) models.Category {
	if c.Fields != nil {
		fields := make(map[string]interface{}, len(c.Fields))
		for k, v := range c.Fields {
			fields[k] = v
		}
		c.Fields = fields
	}
	return c
}

type productRepo struct{ db *db }

func (r *productRepo) Insert(_ context.Context, p *models.Product) (models.InsertAck, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.products = append(r.db.products, *p)
	return models.InsertAck{Acknowledged: true, InsertedID: p.ID}, nil
}

func (r *productRepo) Find(_ context.Context, f store.ProductFilter) ([]models.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := r.db.products
	out := []models.Product{}
	for _, i := range newestFirst(len(all), func(i int) int64 { return all[i].CreatedAt.UnixNano() }) {
		p := all[i]
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if f.CreatedBy != "" && p.CreatedBy != f.CreatedBy {
			continue
		}
		if f.AdvertiseStatus != "" && p.AdvertiseStatus != f.AdvertiseStatus {
			continue
		}
		out = append(out, p)
		if f.Limit > 0 && int64(len(out)) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *productRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, p := range r.db.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

// Update applies $set semantics by round-tripping the product through BSON.
func (r *productRepo) Update(_ context.Context, id primitive.ObjectID, set map[string]interface{}) (models.UpdateAck, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ack := models.UpdateAck{Acknowledged: true}
	for i, p := range r.db.products {
		if p.ID != id {
			continue
		}
		ack.MatchedCount = 1

		before, err := bson.Marshal(p)
		if err != nil {
			return models.UpdateAck{}, fmt.Errorf("encode product: %w", err)
		}
		var doc bson.M
		if err := bson.Unmarshal(before, &doc); err != nil {
			return models.UpdateAck{}, fmt.Errorf("decode product: %w", err)
		}
		for k, v := range set {
			doc[k] = v
		}
		merged, err := bson.Marshal(doc)
		if err != nil {
			return models.UpdateAck{}, fmt.Errorf("encode update: %w", err)
		}
		var updated models.Product
		if err := bson.Unmarshal(merged, &updated); err != nil {
			return models.UpdateAck{}, fmt.Errorf("apply update: %w", err)
		}
		// BSON datetimes are millisecond precision; keep the stored instant.
		if _, ok := set["createdAt"]; !ok {
			updated.CreatedAt = p.CreatedAt
		}
		after, err := bson.Marshal(updated)
		if err != nil {
			return models.UpdateAck{}, fmt.Errorf("encode product: %w", err)
		}
		if !bytes.Equal(before, after) {
			ack.ModifiedCount = 1
			r.db.products[i] = updated
		}
		return ack, nil
	}
	return ack, nil
}

func (r *productRepo) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteAck, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.products {
		if p.ID == id {
			r.db.products = append(r.db.products[:i], r.db.products[i+1:]...)
			return models.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.DeleteAck{Acknowledged: true}, nil
}

type userRepo struct{ db *db }

func (r *userRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *userRepo) Insert(_ context.Context, u *models.User) (models.InsertAck, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return models.InsertAck{}, store.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.db.users = append(r.db.users, *u)
	return models.InsertAck{Acknowledged: true, InsertedID: u.ID}, nil
}

func (r *userRepo) FindByType(_ context.Context, userType string) ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := []models.User{}
	for _, u := range r.db.users {
		if u.UserType == userType {
			out = append(out, u)
		}
	}
	return out, nil
}
