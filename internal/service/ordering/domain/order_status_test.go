// internal/service/ordering/domain/order_status_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusDraft, OrderStatusPlaced, true},
		{OrderStatusDraft, OrderStatusCanceled, true},
		{OrderStatusDraft, OrderStatusPaid, false},
		{OrderStatusDraft, OrderStatusReady, false},

		{OrderStatusPlaced, OrderStatusPaid, true},
		{OrderStatusPlaced, OrderStatusCanceled, true},
		{OrderStatusPlaced, OrderStatusDraft, false},
		{OrderStatusPlaced, OrderStatusReady, false},

		{OrderStatusPaid, OrderStatusReady, true},
		{OrderStatusPaid, OrderStatusCanceled, true},
		{OrderStatusPaid, OrderStatusDraft, false},
		{OrderStatusPaid, OrderStatusPlaced, false},

		{OrderStatusReady, OrderStatusCanceled, true},
		{OrderStatusReady, OrderStatusDraft, false},
		{OrderStatusReady, OrderStatusPlaced, false},
		{OrderStatusReady, OrderStatusPaid, false},

		// CANCELED 是终态，任何迁移都不允许
		{OrderStatusCanceled, OrderStatusDraft, false},
		{OrderStatusCanceled, OrderStatusPlaced, false},
		{OrderStatusCanceled, OrderStatusPaid, false},
		{OrderStatusCanceled, OrderStatusReady, false},
	}

	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanChangeTo(c.to))
			assert.Equal(t, !c.allowed, c.from.CanNotChangeTo(c.to))
		})
	}
}

func TestOrderStatusNoSelfTransition(t *testing.T) {
	for status := range orderStatusTransitions {
		assert.False(t, status.CanChangeTo(status), string(status))
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("PLACED")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusPlaced, status)

	_, err = ParseOrderStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	_, err = ParseOrderStatus("")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}
