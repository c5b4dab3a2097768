package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Raffle struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	Currency    string          `json:"currency"`
	IsActive    bool            `json:"is_active"`
	MinNumber   int             `json:"min_number"`
	MaxNumber   int             `json:"max_number"`
	DrawDate    *time.Time      `json:"draw_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (r *Raffle) TotalTickets() int {
	return r.MaxNumber - r.MinNumber + 1
}

func (r *Raffle) InRange(number int) bool {
	return number >= r.MinNumber && number <= r.MaxNumber
}

type RaffleAvailability struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

type CreateRaffleInput struct {
	Title       string
	Description string
	TicketPrice decimal.Decimal
	Currency    string
	MinNumber   int
	MaxNumber   int
	DrawDate    *time.Time
}

type TicketStatus string

const (
	TicketStatusAvailable TicketStatus = "AVAILABLE"
	TicketStatusReserved  TicketStatus = "RESERVED"
	TicketStatusSold      TicketStatus = "SOLD"
)

// TicketNumber is one numbered ticket of a raffle. RESERVED implies both
// ReservedByOrder and ReservedUntil are set; AVAILABLE clears both. SOLD
// retains ReservedByOrder as the historical buyer link.
type TicketNumber struct {
	ID              string       `json:"id"`
	RaffleID        string       `json:"raffle_id"`
	Number          int          `json:"number"`
	Status          TicketStatus `json:"status"`
	ReservedByOrder *string      `json:"reserved_by_order,omitempty"`
	ReservedUntil   *time.Time   `json:"reserved_until,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (t *TicketNumber) ReservationExpired(now time.Time) bool {
	return t.Status == TicketStatusReserved && t.ReservedUntil != nil && now.After(*t.ReservedUntil)
}
