package ports

import (
	"context"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
)

type AppointmentRepo interface {
	// Create validates the slot and books it inside a single transaction
	// holding an exclusive lock on the service row.
	Create(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error)

	GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error)

	Confirm(ctx context.Context, tenantID, id string, paymentTransactionID *string) (*domain.Appointment, error)
	Cancel(ctx context.Context, tenantID, id, reason string) (*domain.Appointment, error)
	Complete(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	MarkNoShow(ctx context.Context, tenantID, id string) (*domain.Appointment, error)

	// ListActiveBetween returns PENDING and CONFIRMED appointments of one
	// service with scheduled_at in [from, to), ordered by scheduled_at.
	ListActiveBetween(ctx context.Context, tenantID, serviceID string, from, to time.Time) ([]*domain.Appointment, error)

	// ListBetween returns all of a tenant's appointments with scheduled_at in
	// [from, to), any status, ordered by scheduled_at.
	ListBetween(ctx context.Context, tenantID string, from, to time.Time) ([]*domain.Appointment, error)
}
