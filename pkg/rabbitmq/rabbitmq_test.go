package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishOrderEvent_NoChannel(t *testing.T) {
	c := &Client{queue: "order_events"}
	err := c.PublishOrderEvent(OrderEvent{Type: EventOrderDone, OrderID: "O-1"})
	assert.EqualError(t, err, "RabbitMQ channel is not available")
}

func TestOrderEvent_JSON(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	raw, err := json.Marshal(OrderEvent{Type: EventOrderCompleted, OrderID: "O-1", OccurredAt: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"order.completed","order_id":"O-1","occurred_at":"2025-01-02T03:04:05Z"}`, string(raw))
}

func TestClose_NilClient(t *testing.T) {
	assert.NoError(t, (&Client{}).Close())
}
