package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentProvider string

const (
	PaymentProviderBancard PaymentProvider = "BANCARD"
	PaymentProviderManual  PaymentProvider = "MANUAL"
)

// PaymentTransaction records an external payment against either an order or
// an appointment. Exactly one of OrderID and AppointmentID is set; the pair
// replaces the generic untyped reference of earlier schema drafts.
type PaymentTransaction struct {
	ID       string          `json:"id"`
	TenantID string          `json:"tenant_id"`
	Provider PaymentProvider `json:"provider"`

	ExternalID string          `json:"external_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     string          `json:"status"`

	OrderID       *string `json:"order_id,omitempty"`
	AppointmentID *string `json:"appointment_id,omitempty"`

	Notes string `json:"notes"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

func (p *PaymentTransaction) Validate() error {
	set := 0
	if p.OrderID != nil {
		set++
	}
	if p.AppointmentID != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: payment transaction must reference exactly one of order or appointment", ErrValidation)
	}
	if p.ExternalID == "" {
		return fmt.Errorf("%w: external_id is required", ErrValidation)
	}
	return nil
}
