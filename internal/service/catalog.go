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

const minServiceDurationMinutes = 5

type CatalogService struct {
	serviceRepo ports.ServiceRepo
	logger      logger.Logger
}

func NewCatalogService(serviceRepo ports.ServiceRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, tenantID string, input domain.CreateServiceInput) (*domain.Service, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: service name is required", domain.ErrValidation)
	}
	if input.DurationMinutes < minServiceDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be at least %d minutes", domain.ErrValidation, minServiceDurationMinutes)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.BufferTimeMinutes < 0 {
		return nil, fmt.Errorf("%w: buffer time must not be negative", domain.ErrValidation)
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:                 uuid.New().String(),
		TenantID:           tenantID,
		Name:               strings.TrimSpace(input.Name),
		Description:        input.Description,
		DurationMinutes:    input.DurationMinutes,
		Price:              input.Price,
		Currency:           currency,
		IsActive:           true,
		BufferTimeMinutes:  input.BufferTimeMinutes,
		MaxBookingsPerDay:  input.MaxBookingsPerDay,
		AdvanceBookingDays: input.AdvanceBookingDays,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info("service created",
		logger.String("service_id", svc.ID),
		logger.String("tenant_id", tenantID),
		logger.String("name", svc.Name),
	)

	return svc, nil
}

func (s *CatalogService) Get(ctx context.Context, tenantID, id string) (*domain.Service, error) {
	return s.serviceRepo.GetByID(ctx, tenantID, id)
}

func (s *CatalogService) List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Service, error) {
	return s.serviceRepo.List(ctx, tenantID, activeOnly)
}
