package ports

import (
	"context"

	"github.com/devpbeat/reservio/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, txn *domain.PaymentTransaction) error
}
