package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AppointmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAppointmentRepo(db *dbpg.DB) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const appointmentColumns = `id, tenant_id, service_id, customer_id, scheduled_at, duration_minutes,
		status, payment_status, total_amount, currency, payment_transaction_id,
		customer_notes, internal_notes, created_at, updated_at, confirmed_at, cancelled_at, completed_at`

// Create books a slot for a service. The service row is locked first so that
// concurrent creates against the same service serialize before the conflict
// and daily-limit checks run.
func (r *AppointmentRepository) Create(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	svcQuery := `SELECT duration_minutes, price, currency, buffer_time_minutes,
						max_bookings_per_day, advance_booking_days
				 FROM services
				 WHERE tenant_id = $1 AND id = $2 AND is_active
				 FOR UPDATE`

	var svc domain.Service
	err = tx.QueryRowContext(ctx, svcQuery, input.TenantID, input.ServiceID).Scan(
		&svc.DurationMinutes, &svc.Price, &svc.Currency, &svc.BufferTimeMinutes,
		&svc.MaxBookingsPerDay, &svc.AdvanceBookingDays,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("lock service: %w", err)
	}

	now := time.Now().UTC()
	if !input.ScheduledAt.After(now) {
		return nil, fmt.Errorf("%w: cannot book appointments in the past", domain.ErrInvalidTimeWindow)
	}
	maxAdvance := now.AddDate(0, 0, svc.AdvanceBookingDays)
	if input.ScheduledAt.After(maxAdvance) {
		return nil, fmt.Errorf("%w: cannot book more than %d days in advance",
			domain.ErrInvalidTimeWindow, svc.AdvanceBookingDays)
	}

	available, err := slotAvailableTx(ctx, tx, input.TenantID, input.ServiceID, &svc, input.ScheduledAt)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("%w: this time slot is not available", domain.ErrSlotUnavailable)
	}

	customerID, err := upsertCustomer(ctx, tx, input.TenantID, input.Customer, now)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ID:              uuid.New().String(),
		TenantID:        input.TenantID,
		ServiceID:       input.ServiceID,
		CustomerID:      customerID,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: svc.DurationMinutes,
		Status:          domain.AppointmentStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		TotalAmount:     svc.Price,
		Currency:        svc.Currency,
		CustomerNotes:   input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	insertQuery := `INSERT INTO appointments (id, tenant_id, service_id, customer_id, scheduled_at,
						duration_minutes, status, payment_status, total_amount, currency,
						customer_notes, internal_notes, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, '', $12, $12)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		appt.ID, appt.TenantID, appt.ServiceID, appt.CustomerID, appt.ScheduledAt,
		appt.DurationMinutes, appt.Status, appt.PaymentStatus, appt.TotalAmount, appt.Currency,
		appt.CustomerNotes, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return appt, nil
}

// slotAvailableTx re-runs the availability check under the service lock. The
// buffer expands the candidate window only; existing appointments count with
// their own un-buffered windows.
func slotAvailableTx(ctx context.Context, tx *sql.Tx, tenantID, serviceID string, svc *domain.Service, scheduledAt time.Time) (bool, error) {
	windowStart := scheduledAt.Add(-svc.Buffer())
	windowEnd := scheduledAt.Add(svc.Duration()).Add(svc.Buffer())

	overlapQuery := `SELECT EXISTS (
						SELECT 1 FROM appointments
						WHERE tenant_id = $1 AND service_id = $2 AND status = ANY($3)
						  AND scheduled_at < $4
						  AND scheduled_at + make_interval(mins => duration_minutes) > $5
					 )`

	var overlapping bool
	err := tx.QueryRowContext(
		ctx, overlapQuery,
		tenantID, serviceID, pq.Array(domain.ActiveAppointmentStatuses),
		windowEnd, windowStart,
	).Scan(&overlapping)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	if overlapping {
		return false, nil
	}

	dayStart := time.Date(scheduledAt.Year(), scheduledAt.Month(), scheduledAt.Day(), 0, 0, 0, 0, scheduledAt.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	countQuery := `SELECT COUNT(*) FROM appointments
				   WHERE tenant_id = $1 AND service_id = $2 AND status = ANY($3)
					 AND scheduled_at >= $4 AND scheduled_at < $5`

	var dailyCount int
	err = tx.QueryRowContext(
		ctx, countQuery,
		tenantID, serviceID, pq.Array(domain.ActiveAppointmentStatuses),
		dayStart, dayEnd,
	).Scan(&dailyCount)
	if err != nil {
		return false, fmt.Errorf("count daily bookings: %w", err)
	}

	return dailyCount < svc.MaxBookingsPerDay, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE tenant_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	return scanAppointment(row.Scan)
}

func (r *AppointmentRepository) Confirm(ctx context.Context, tenantID, id string, paymentTransactionID *string) (*domain.Appointment, error) {
	return r.transition(ctx, tenantID, id, func(ctx context.Context, tx *sql.Tx, a *domain.Appointment, now time.Time) error {
		if a.Status != domain.AppointmentStatusPending {
			return fmt.Errorf("%w: cannot confirm an appointment with status %s", domain.ErrInvalidTransition, a.Status)
		}

		a.Status = domain.AppointmentStatusConfirmed
		a.PaymentStatus = domain.PaymentStatusPaid
		a.ConfirmedAt = &now
		if paymentTransactionID != nil {
			a.PaymentTransactionID = paymentTransactionID
		}

		query := `UPDATE appointments
				  SET status = $2, payment_status = $3, confirmed_at = $4,
					  payment_transaction_id = COALESCE($5, payment_transaction_id), updated_at = $4
				  WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, a.ID, a.Status, a.PaymentStatus, now, paymentTransactionID); err != nil {
			return fmt.Errorf("confirm appointment: %w", err)
		}

		return touchCustomerLastAppointment(ctx, tx, a.CustomerID, now)
	})
}

func (r *AppointmentRepository) Cancel(ctx context.Context, tenantID, id, reason string) (*domain.Appointment, error) {
	return r.transition(ctx, tenantID, id, func(ctx context.Context, tx *sql.Tx, a *domain.Appointment, now time.Time) error {
		if a.Status == domain.AppointmentStatusCompleted || a.Status == domain.AppointmentStatusCancelled {
			return fmt.Errorf("%w: cannot cancel an appointment with status %s", domain.ErrInvalidTransition, a.Status)
		}

		a.Status = domain.AppointmentStatusCancelled
		a.CancelledAt = &now
		if reason != "" {
			a.InternalNotes = appendNote(a.InternalNotes, "Cancelled: "+reason)
		}

		query := `UPDATE appointments
				  SET status = $2, cancelled_at = $3, internal_notes = $4, updated_at = $3
				  WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, a.ID, a.Status, now, a.InternalNotes); err != nil {
			return fmt.Errorf("cancel appointment: %w", err)
		}

		return nil
	})
}

func (r *AppointmentRepository) Complete(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	return r.transition(ctx, tenantID, id, func(ctx context.Context, tx *sql.Tx, a *domain.Appointment, now time.Time) error {
		if a.Status != domain.AppointmentStatusConfirmed {
			return fmt.Errorf("%w: only confirmed appointments can be completed, current status %s", domain.ErrInvalidTransition, a.Status)
		}
		if a.EndTime().After(now) {
			return fmt.Errorf("%w: cannot complete an appointment that has not finished yet", domain.ErrInvalidTimeWindow)
		}

		a.Status = domain.AppointmentStatusCompleted
		a.CompletedAt = &now

		query := `UPDATE appointments SET status = $2, completed_at = $3, updated_at = $3 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, a.ID, a.Status, now); err != nil {
			return fmt.Errorf("complete appointment: %w", err)
		}

		return touchCustomerLastAppointment(ctx, tx, a.CustomerID, now)
	})
}

func (r *AppointmentRepository) MarkNoShow(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	return r.transition(ctx, tenantID, id, func(ctx context.Context, tx *sql.Tx, a *domain.Appointment, now time.Time) error {
		if a.Status != domain.AppointmentStatusConfirmed {
			return fmt.Errorf("%w: only confirmed appointments can be marked as no-show, current status %s", domain.ErrInvalidTransition, a.Status)
		}
		if a.ScheduledAt.After(now) {
			return fmt.Errorf("%w: cannot mark a future appointment as no-show", domain.ErrInvalidTimeWindow)
		}

		a.Status = domain.AppointmentStatusNoShow
		a.InternalNotes = appendNote(a.InternalNotes, "Marked as no-show at "+now.Format("2006-01-02 15:04"))

		query := `UPDATE appointments SET status = $2, internal_notes = $3, updated_at = $4 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, query, a.ID, a.Status, a.InternalNotes, now); err != nil {
			return fmt.Errorf("mark no-show: %w", err)
		}

		return nil
	})
}

func (r *AppointmentRepository) ListActiveBetween(ctx context.Context, tenantID, serviceID string, from, to time.Time) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
			  WHERE tenant_id = $1 AND service_id = $2 AND status = ANY($3)
				AND scheduled_at >= $4 AND scheduled_at < $5
			  ORDER BY scheduled_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		tenantID, serviceID, pq.Array(domain.ActiveAppointmentStatuses), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *AppointmentRepository) ListBetween(ctx context.Context, tenantID string, from, to time.Time) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
			  WHERE tenant_id = $1 AND scheduled_at >= $2 AND scheduled_at < $3
			  ORDER BY scheduled_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

// transition loads and locks one appointment, applies fn, and commits.
func (r *AppointmentRepository) transition(
	ctx context.Context,
	tenantID, id string,
	fn func(ctx context.Context, tx *sql.Tx, a *domain.Appointment, now time.Time) error,
) (*domain.Appointment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	a, err := scanAppointment(tx.QueryRowContext(ctx, query, tenantID, id).Scan)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = fn(ctx, tx, a, now); err != nil {
		return nil, err
	}
	a.UpdatedAt = now

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return a, nil
}

func scanAppointment(scan func(...any) error) (*domain.Appointment, error) {
	var a domain.Appointment
	err := scan(
		&a.ID, &a.TenantID, &a.ServiceID, &a.CustomerID, &a.ScheduledAt, &a.DurationMinutes,
		&a.Status, &a.PaymentStatus, &a.TotalAmount, &a.Currency, &a.PaymentTransactionID,
		&a.CustomerNotes, &a.InternalNotes, &a.CreatedAt, &a.UpdatedAt,
		&a.ConfirmedAt, &a.CancelledAt, &a.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	return &a, nil
}

func appendNote(notes, note string) string {
	if notes == "" {
		return note
	}
	return notes + "\n\n" + note
}
