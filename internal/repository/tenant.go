package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TenantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTenantRepo(db *dbpg.DB) *TenantRepository {
	return &TenantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const tenantColumns = `id, slug, name, is_active, settings, created_at, updated_at`

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1 AND is_active`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slug)
	if err != nil {
		return nil, fmt.Errorf("get tenant by slug: %w", err)
	}

	return scanTenant(row)
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1 AND is_active`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	return scanTenant(row)
}

func scanTenant(row *sql.Row) (*domain.Tenant, error) {
	var t domain.Tenant
	var settings []byte
	err := row.Scan(&t.ID, &t.Slug, &t.Name, &t.IsActive, &settings, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("scan tenant: %w", err)
	}

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &t.Settings); err != nil {
			return nil, fmt.Errorf("decode tenant settings: %w", err)
		}
	}

	return &t, nil
}
