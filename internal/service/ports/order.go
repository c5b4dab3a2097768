package ports

import (
	"context"

	"github.com/devpbeat/reservio/internal/domain"
)

type OrderRepo interface {
	// ReserveSpecific and ReserveRandom allocate tickets inside a single
	// transaction holding an exclusive lock on the raffle row, sweeping
	// expired holds first.
	ReserveSpecific(ctx context.Context, input domain.ReserveInput, numbers []int) (*domain.Order, error)
	ReserveRandom(ctx context.Context, input domain.ReserveInput, qty int) (*domain.Order, error)

	GetByID(ctx context.Context, tenantID, id string) (*domain.Order, error)
	ListPendingPayment(ctx context.Context, tenantID string) ([]*domain.Order, error)

	// Release returns the order's tickets to the pool and cancels the order.
	// Calling it on an already cancelled order is a no-op.
	Release(ctx context.Context, tenantID, id string) (int, error)

	ConfirmPaid(ctx context.Context, tenantID, id string, paymentProofID *string) (*domain.Order, error)

	// MarkExpired transitions an overdue PENDING_PAYMENT order to EXPIRED and
	// releases its tickets. Returns the order unchanged when not yet overdue.
	MarkExpired(ctx context.Context, tenantID, id string) (*domain.Order, error)

	// ExpireOverdue sweeps every overdue PENDING_PAYMENT order.
	ExpireOverdue(ctx context.Context) ([]*domain.Order, error)
}
