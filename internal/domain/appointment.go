package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusNoShow    AppointmentStatus = "NO_SHOW"
)

// ActiveAppointmentStatuses are the non-terminal statuses that occupy a slot.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type Appointment struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`

	ServiceID  string `json:"service_id"`
	CustomerID string `json:"customer_id"`

	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`

	Status        AppointmentStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`

	// TotalAmount and Currency are copied from the service at creation time
	// and never recomputed.
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`

	PaymentTransactionID *string `json:"payment_transaction_id,omitempty"`

	CustomerNotes string `json:"customer_notes"`
	InternalNotes string `json:"internal_notes"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (a *Appointment) EndTime() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// ConflictsWith reports whether an existing appointment blocks a candidate
// slot of the given duration. The buffer expands the candidate window only;
// the existing appointment contributes its own un-buffered window.
func (a *Appointment) ConflictsWith(candidateStart time.Time, duration, buffer time.Duration) bool {
	windowStart := candidateStart.Add(-buffer)
	windowEnd := candidateStart.Add(duration).Add(buffer)
	return a.ScheduledAt.Before(windowEnd) && a.EndTime().After(windowStart)
}

type CreateAppointmentInput struct {
	TenantID    string
	ServiceID   string
	Customer    CustomerInput
	ScheduledAt time.Time
	Notes       string
}
