package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a tenant-defined bookable offering (haircut, consultation, ...).
type Service struct {
	ID                 string          `json:"id"`
	TenantID           string          `json:"tenant_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	DurationMinutes    int             `json:"duration_minutes"`
	Price              decimal.Decimal `json:"price"`
	Currency           string          `json:"currency"`
	IsActive           bool            `json:"is_active"`
	BufferTimeMinutes  int             `json:"buffer_time_minutes"`
	MaxBookingsPerDay  int             `json:"max_bookings_per_day"`
	AdvanceBookingDays int             `json:"advance_booking_days"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

func (s *Service) Buffer() time.Duration {
	return time.Duration(s.BufferTimeMinutes) * time.Minute
}

type CreateServiceInput struct {
	Name               string
	Description        string
	DurationMinutes    int
	Price              decimal.Decimal
	Currency           string
	BufferTimeMinutes  int
	MaxBookingsPerDay  int
	AdvanceBookingDays int
}
