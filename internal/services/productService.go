package services

import (
	"context"
	"time"

	"github.com/retocart/server/internal/events"
	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RecentLimit caps the recent products listing.
const RecentLimit = 4

type ProductService struct {
	products store.Products
	joiner   store.Joiner
	events   events.Publisher
	log      *zap.Logger
	now      func() time.Time
}

func NewProductService(products store.Products, joiner store.Joiner, pub events.Publisher, log *zap.Logger) *ProductService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &ProductService{products: products, joiner: joiner, events: pub, log: log, now: time.Now}
}

// Create stamps the creation time and resets both statuses before insert.
func (s *ProductService) Create(ctx context.Context, p *models.Product) (models.InsertAck, error) {
	p.ID = primitive.NilObjectID
	p.CreatedAt = s.now()
	p.AdvertiseStatus = models.AdvertiseNotPublished
	p.SaleStatus = models.SaleNotSold

	ack, err := s.products.Insert(ctx, p)
	if err != nil {
		return models.InsertAck{}, err
	}
	s.emit(ctx, events.SubjectProductCreated, ack.InsertedID, p.CreatedBy)
	return ack, nil
}

func (s *ProductService) Publish(ctx context.Context, id primitive.ObjectID) (models.UpdateAck, error) {
	ack, err := s.products.Update(ctx, id, map[string]interface{}{"advertiseStatus": models.AdvertisePublished})
	if err != nil {
		return models.UpdateAck{}, err
	}
	if ack.ModifiedCount > 0 {
		s.emit(ctx, events.SubjectProductPublished, id, "")
	}
	return ack, nil
}

// Update sets the given document keys. Callers are responsible for
// restricting keys to product fields.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (models.UpdateAck, error) {
	ack, err := s.products.Update(ctx, id, set)
	if err != nil {
		return models.UpdateAck{}, err
	}
	if ack.ModifiedCount > 0 {
		s.emit(ctx, events.SubjectProductUpdated, id, "")
	}
	return ack, nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error) {
	ack, err := s.products.Delete(ctx, id)
	if err != nil {
		return models.DeleteAck{}, err
	}
	if ack.DeletedCount > 0 {
		s.emit(ctx, events.SubjectProductDeleted, id, "")
	}
	return ack, nil
}

func (s *ProductService) Details(ctx context.Context, id primitive.ObjectID) ([]models.ProductDetails, error) {
	return s.joiner.ProductDetails(ctx, id)
}

func (s *ProductService) Published(ctx context.Context) ([]models.ProductView, error) {
	return s.joiner.Published(ctx, 0)
}

func (s *ProductService) Recent(ctx context.Context) ([]models.ProductView, error) {
	return s.joiner.Published(ctx, RecentLimit)
}

func (s *ProductService) ByCreator(ctx context.Context, email string) ([]models.Product, error) {
	return s.products.Find(ctx, store.ProductFilter{CreatedBy: email})
}

// emit never fails the request; delivery problems are only logged.
func (s *ProductService) emit(ctx context.Context, subject string, id primitive.ObjectID, actor string) {
	evt := events.ProductEvent{ProductID: id.Hex(), Actor: actor, At: s.now()}
	if err := s.events.Publish(ctx, subject, evt); err != nil {
		s.log.Warn("publish event failed", zap.String("subject", subject), zap.String("product_id", evt.ProductID), zap.Error(err))
	}
}
