package ports

import (
	"context"

	"github.com/devpbeat/reservio/internal/domain"
)

type RaffleRepo interface {
	Create(ctx context.Context, r *domain.Raffle) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Raffle, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Raffle, error)

	// GenerateTickets creates one AVAILABLE ticket per number in the raffle's
	// range. It refuses to regenerate existing tickets unless force is set.
	GenerateTickets(ctx context.Context, tenantID, raffleID string, force bool) (int, error)

	Availability(ctx context.Context, tenantID, raffleID string) (*domain.RaffleAvailability, error)
	ListTickets(ctx context.Context, tenantID, raffleID string, status domain.TicketStatus) ([]*domain.TicketNumber, error)
}
