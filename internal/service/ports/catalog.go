package ports

import (
	"context"

	"github.com/devpbeat/reservio/internal/domain"
)

type ServiceRepo interface {
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Service, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Service, error)
}

type CustomerRepo interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, tenantID, phone string) (*domain.Customer, error)
	List(ctx context.Context, tenantID string) ([]*domain.Customer, error)
}
