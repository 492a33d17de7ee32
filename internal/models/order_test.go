package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	cas := []struct {
		from, to string
		attendu  bool
	}{
		{OrderStatusPending, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tc := range cas {
		assert.Equal(t, tc.attendu, CanTransitionOrderStatus(tc.from, tc.to),
			"%s → %s", tc.from, tc.to)
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusPending))
	assert.True(t, ValidOrderStatus(OrderStatusDelivered))
	assert.True(t, ValidOrderStatus(OrderStatusCancelled))
	assert.False(t, ValidOrderStatus("Shipped"))
	assert.False(t, ValidOrderStatus(""))
}
