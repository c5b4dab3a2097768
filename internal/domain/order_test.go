package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_IsExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{"pending and overdue", Order{Status: OrderStatusPendingPayment, ExpiresAt: &past}, true},
		{"pending and not yet due", Order{Status: OrderStatusPendingPayment, ExpiresAt: &future}, false},
		{"pending without deadline", Order{Status: OrderStatusPendingPayment}, false},
		{"paid and overdue", Order{Status: OrderStatusPaid, ExpiresAt: &past}, false},
		{"cancelled and overdue", Order{Status: OrderStatusCancelled, ExpiresAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.IsExpired(now))
		})
	}
}

func TestOrder_IsReleasable(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusDraft}).IsReleasable())
	assert.True(t, (&Order{Status: OrderStatusPendingPayment}).IsReleasable())
	assert.True(t, (&Order{Status: OrderStatusExpired}).IsReleasable())
	assert.False(t, (&Order{Status: OrderStatusPaid}).IsReleasable())
	assert.False(t, (&Order{Status: OrderStatusCancelled}).IsReleasable())
}
