package ports

import (
	"context"

	"github.com/devpbeat/reservio/internal/domain"
)

// OrderNotifier delivers best-effort outbound notifications. Implementations
// log failures instead of returning them.
type OrderNotifier interface {
	NotifyPaymentConfirmed(ctx context.Context, order *domain.Order)
}
