package events

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
)

const (
	SubjectProductCreated   = "product.created"
	SubjectProductPublished = "product.published"
	SubjectProductUpdated   = "product.updated"
	SubjectProductDeleted   = "product.deleted"
)

// ProductEvent is the payload of every product.* subject.
type ProductEvent struct {
	ProductID string    `json:"productId"`
	Actor     string    `json:"actor,omitempty"`
	At        time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close()
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("retoCart"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	return p.conn.Publish(subject, payload)
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}

// NopPublisher drops every event. Used when NATS_URL is unset.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close()                                            {}
