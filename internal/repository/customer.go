package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const customerColumns = `id, tenant_id, name, email, phone, notes, last_appointment_at, created_at, updated_at`

func (r *CustomerRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return scanCustomer(row.Scan)
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, tenantID, phone string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND phone = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, phone)
	if err != nil {
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}

	return scanCustomer(row.Scan)
}

func (r *CustomerRepository) List(ctx context.Context, tenantID string) ([]*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanCustomer(scan func(...any) error) (*domain.Customer, error) {
	var c domain.Customer
	err := scan(
		&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.Notes,
		&c.LastAppointmentAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return &c, nil
}

// upsertCustomer creates or refreshes a customer by (tenant, phone) inside an
// open transaction and returns its id. The unique constraint makes concurrent
// first-time bookings converge on one row.
func upsertCustomer(ctx context.Context, tx *sql.Tx, tenantID string, in domain.CustomerInput, now time.Time) (string, error) {
	query := `INSERT INTO customers (id, tenant_id, name, email, phone, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)
			  ON CONFLICT (tenant_id, phone) DO UPDATE
			  SET name       = EXCLUDED.name,
				  email      = COALESCE(NULLIF(EXCLUDED.email, ''), customers.email),
				  updated_at = EXCLUDED.updated_at
			  RETURNING id`

	var id string
	err := tx.QueryRowContext(
		ctx, query,
		uuid.New().String(), tenantID, in.Name, in.Email, in.Phone, now,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert customer: %w", err)
	}

	return id, nil
}

// touchCustomerLastAppointment stamps the customer's last appointment time
// within the same transaction as the owning status change.
func touchCustomerLastAppointment(ctx context.Context, tx *sql.Tx, customerID string, at time.Time) error {
	query := `UPDATE customers SET last_appointment_at = $2, updated_at = $2 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, customerID, at); err != nil {
		return fmt.Errorf("update customer last appointment: %w", err)
	}
	return nil
}
