package events

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductEventPayload(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(ProductEvent{ProductID: "65f000000000000000000001", At: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"productId":"65f000000000000000000001","at":"2024-03-01T12:00:00Z"}`, string(raw))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), SubjectProductCreated, ProductEvent{}))
	p.Close()
}

func TestNewNATSPublisherUnreachable(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1")
	assert.Error(t, err)
}
