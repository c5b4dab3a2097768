package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ServiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewServiceRepo(db *dbpg.DB) *ServiceRepository {
	return &ServiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const serviceColumns = `id, tenant_id, name, description, duration_minutes, price, currency,
		is_active, buffer_time_minutes, max_bookings_per_day, advance_booking_days,
		created_at, updated_at`

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services (id, tenant_id, name, description, duration_minutes, price, currency,
				buffer_time_minutes, max_bookings_per_day, advance_booking_days, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.TenantID, s.Name, s.Description, s.DurationMinutes, s.Price, s.Currency,
		s.BufferTimeMinutes, s.MaxBookingsPerDay, s.AdvanceBookingDays, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: service %q already exists", domain.ErrValidation, s.Name)
		}
		return fmt.Errorf("insert service: %w", err)
	}

	s.IsActive = true
	s.CreatedAt = now
	s.UpdatedAt = now

	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE tenant_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.Service
	if err = scanService(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services
			  WHERE tenant_id = $1 AND ($2 = FALSE OR is_active)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err = scanService(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func scanService(scan func(...any) error, s *domain.Service) error {
	return scan(
		&s.ID, &s.TenantID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.Currency,
		&s.IsActive, &s.BufferTimeMinutes, &s.MaxBookingsPerDay, &s.AdvanceBookingDays,
		&s.CreatedAt, &s.UpdatedAt,
	)
}
