package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusDraft          OrderStatus = "DRAFT"
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusExpired        OrderStatus = "EXPIRED"
)

// ReleasableOrderStatuses are the statuses from which reserved tickets may be
// released back to the pool.
var ReleasableOrderStatuses = []OrderStatus{
	OrderStatusDraft,
	OrderStatusPendingPayment,
	OrderStatusExpired,
}

type Order struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenant_id"`
	RaffleID   string `json:"raffle_id"`
	CustomerID string `json:"customer_id"`

	Qty int `json:"qty"`

	// TotalAmount is ticket_price * qty, fixed at creation.
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`

	Status         OrderStatus `json:"status"`
	PaymentProofID *string     `json:"payment_proof_id,omitempty"`

	// TicketNumbers is populated on reads for convenience, sorted ascending.
	TicketNumbers []int `json:"ticket_numbers,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (o *Order) IsExpired(now time.Time) bool {
	return o.Status == OrderStatusPendingPayment && o.ExpiresAt != nil && now.After(*o.ExpiresAt)
}

func (o *Order) IsReleasable() bool {
	for _, s := range ReleasableOrderStatuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

// ReserveInput carries everything a reservation transaction needs besides the
// requested numbers or quantity.
type ReserveInput struct {
	TenantID string
	RaffleID string
	Customer CustomerInput
	Timeout  time.Duration
}
