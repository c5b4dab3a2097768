package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RaffleService struct {
	raffleRepo ports.RaffleRepo
	logger     logger.Logger
}

func NewRaffleService(raffleRepo ports.RaffleRepo, logger logger.Logger) *RaffleService {
	return &RaffleService{raffleRepo: raffleRepo, logger: logger}
}

func (s *RaffleService) Create(ctx context.Context, tenantID string, input domain.CreateRaffleInput) (*domain.Raffle, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: raffle title is required", domain.ErrValidation)
	}
	if !input.TicketPrice.IsPositive() {
		return nil, fmt.Errorf("%w: ticket price must be positive", domain.ErrValidation)
	}
	if input.MinNumber < 1 {
		return nil, fmt.Errorf("%w: min number must be at least 1", domain.ErrValidation)
	}
	if input.MaxNumber < input.MinNumber {
		return nil, fmt.Errorf("%w: max number must not be below min number", domain.ErrValidation)
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	raffle := &domain.Raffle{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		TicketPrice: input.TicketPrice,
		Currency:    currency,
		IsActive:    true,
		MinNumber:   input.MinNumber,
		MaxNumber:   input.MaxNumber,
		DrawDate:    input.DrawDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.raffleRepo.Create(ctx, raffle); err != nil {
		return nil, err
	}

	s.logger.Info("raffle created",
		logger.String("raffle_id", raffle.ID),
		logger.String("tenant_id", tenantID),
		logger.Int("total_tickets", raffle.TotalTickets()),
	)

	return raffle, nil
}

// GenerateTickets materializes one AVAILABLE ticket row per number in the
// raffle's range. With force set, existing tickets are dropped first.
func (s *RaffleService) GenerateTickets(ctx context.Context, tenantID, raffleID string, force bool) (int, error) {
	generated, err := s.raffleRepo.GenerateTickets(ctx, tenantID, raffleID, force)
	if err != nil {
		return 0, err
	}

	s.logger.Info("tickets generated",
		logger.String("raffle_id", raffleID),
		logger.String("tenant_id", tenantID),
		logger.Int("count", generated),
	)

	return generated, nil
}

func (s *RaffleService) Get(ctx context.Context, tenantID, id string) (*domain.Raffle, error) {
	return s.raffleRepo.GetByID(ctx, tenantID, id)
}

func (s *RaffleService) List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Raffle, error) {
	return s.raffleRepo.List(ctx, tenantID, activeOnly)
}

func (s *RaffleService) Availability(ctx context.Context, tenantID, raffleID string) (*domain.RaffleAvailability, error) {
	return s.raffleRepo.Availability(ctx, tenantID, raffleID)
}

func (s *RaffleService) Tickets(ctx context.Context, tenantID, raffleID string, status domain.TicketStatus) ([]*domain.TicketNumber, error) {
	return s.raffleRepo.ListTickets(ctx, tenantID, raffleID, status)
}
