package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusProcessing, OrderStatusCompleted, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrder_AppendEvent(t *testing.T) {
	order := &Order{}

	first := order.AppendEvent(OrderEventCreated, "order created")
	second := order.AppendEvent(OrderEventPaid, "payment confirmed")

	require.Len(t, order.Events, 2)
	assert.Equal(t, OrderEventCreated, first.Kind)
	assert.Equal(t, OrderEventPaid, second.Kind)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, second.CreatedAt.IsZero())
}
