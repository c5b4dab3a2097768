package domain

import "time"

type Tenant struct {
	ID        string         `json:"id"`
	Slug      string         `json:"slug"`
	Name      string         `json:"name"`
	IsActive  bool           `json:"is_active"`
	Settings  TenantSettings `json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TenantSettings is the per-tenant configuration blob stored as JSONB.
// Zero values mean "use the platform default".
type TenantSettings struct {
	BusinessHoursStart        int `json:"business_hours_start,omitempty"`
	BusinessHoursEnd          int `json:"business_hours_end,omitempty"`
	SlotIntervalMinutes       int `json:"slot_interval_minutes,omitempty"`
	MinTicketsPerOrder        int `json:"min_tickets_per_order,omitempty"`
	MaxTicketsPerOrder        int `json:"max_tickets_per_order,omitempty"`
	ReservationTimeoutMinutes int `json:"reservation_timeout_minutes,omitempty"`
}

const (
	DefaultBusinessHoursStart        = 9
	DefaultBusinessHoursEnd          = 18
	DefaultSlotIntervalMinutes       = 30
	DefaultMinTicketsPerOrder        = 1
	DefaultMaxTicketsPerOrder        = 50
	DefaultReservationTimeoutMinutes = 15
)

// Normalized returns a copy with every unset field replaced by its default.
func (s TenantSettings) Normalized() TenantSettings {
	if s.BusinessHoursStart <= 0 {
		s.BusinessHoursStart = DefaultBusinessHoursStart
	}
	if s.BusinessHoursEnd <= 0 {
		s.BusinessHoursEnd = DefaultBusinessHoursEnd
	}
	if s.SlotIntervalMinutes <= 0 {
		s.SlotIntervalMinutes = DefaultSlotIntervalMinutes
	}
	if s.MinTicketsPerOrder <= 0 {
		s.MinTicketsPerOrder = DefaultMinTicketsPerOrder
	}
	if s.MaxTicketsPerOrder <= 0 {
		s.MaxTicketsPerOrder = DefaultMaxTicketsPerOrder
	}
	if s.ReservationTimeoutMinutes <= 0 {
		s.ReservationTimeoutMinutes = DefaultReservationTimeoutMinutes
	}
	return s
}

func (s TenantSettings) ReservationTimeout() time.Duration {
	return time.Duration(s.Normalized().ReservationTimeoutMinutes) * time.Minute
}
