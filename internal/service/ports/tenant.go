package ports

import (
	"context"

	"github.com/devpbeat/reservio/internal/domain"
)

type TenantRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}
