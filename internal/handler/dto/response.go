package dto

import (
	"time"

	"github.com/devpbeat/reservio/internal/domain"
)

type ServiceResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	DurationMinutes    int    `json:"duration_minutes"`
	Price              string `json:"price"`
	Currency           string `json:"currency"`
	IsActive           bool   `json:"is_active"`
	BufferTimeMinutes  int    `json:"buffer_time_minutes"`
	MaxBookingsPerDay  int    `json:"max_bookings_per_day"`
	AdvanceBookingDays int    `json:"advance_booking_days"`
	CreatedAt          string `json:"created_at"`
}

type AppointmentResponse struct {
	ID              string  `json:"id"`
	ServiceID       string  `json:"service_id"`
	CustomerID      string  `json:"customer_id"`
	ScheduledAt     string  `json:"scheduled_at"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	TotalAmount     string  `json:"total_amount"`
	Currency        string  `json:"currency"`
	CustomerNotes   string  `json:"customer_notes,omitempty"`
	ConfirmedAt     *string `json:"confirmed_at,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CompletedAt     *string `json:"completed_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type CustomerResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email,omitempty"`
	Notes             string  `json:"notes,omitempty"`
	LastAppointmentAt *string `json:"last_appointment_at,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type NextSlotResponse struct {
	NextSlot string `json:"next_slot"`
}

type CalendarDayResponse struct {
	Date           string   `json:"date"`
	AvailableCount int      `json:"available_count"`
	BookedCount    int      `json:"booked_count"`
	Slots          []string `json:"slots"`
}

type RaffleResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	TicketPrice  string  `json:"ticket_price"`
	Currency     string  `json:"currency"`
	IsActive     bool    `json:"is_active"`
	MinNumber    int     `json:"min_number"`
	MaxNumber    int     `json:"max_number"`
	TotalTickets int     `json:"total_tickets"`
	DrawDate     *string `json:"draw_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type TicketResponse struct {
	Number          int     `json:"number"`
	Status          string  `json:"status"`
	ReservedByOrder *string `json:"reserved_by_order,omitempty"`
	ReservedUntil   *string `json:"reserved_until,omitempty"`
}

type OrderResponse struct {
	ID             string  `json:"id"`
	RaffleID       string  `json:"raffle_id"`
	CustomerID     string  `json:"customer_id"`
	Qty            int     `json:"qty"`
	TotalAmount    string  `json:"total_amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	TicketNumbers  []int   `json:"ticket_numbers"`
	PaymentProofID *string `json:"payment_proof_id,omitempty"`
	ExpiresAt      *string `json:"expires_at,omitempty"`
	PaidAt         *string `json:"paid_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type GenerateTicketsResponse struct {
	Generated int `json:"generated"`
}

type ReleaseResponse struct {
	Status          string `json:"status"`
	TicketsReleased int    `json:"tickets_released"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		DurationMinutes:    s.DurationMinutes,
		Price:              s.Price.StringFixed(2),
		Currency:           s.Currency,
		IsActive:           s.IsActive,
		BufferTimeMinutes:  s.BufferTimeMinutes,
		MaxBookingsPerDay:  s.MaxBookingsPerDay,
		AdvanceBookingDays: s.AdvanceBookingDays,
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
	}
}

func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		ServiceID:       a.ServiceID,
		CustomerID:      a.CustomerID,
		ScheduledAt:     a.ScheduledAt.Format(time.RFC3339),
		EndTime:         a.EndTime().Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		TotalAmount:     a.TotalAmount.StringFixed(2),
		Currency:        a.Currency,
		CustomerNotes:   a.CustomerNotes,
		ConfirmedAt:     formatTimePtr(a.ConfirmedAt),
		CancelledAt:     formatTimePtr(a.CancelledAt),
		CompletedAt:     formatTimePtr(a.CompletedAt),
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		Email:             c.Email,
		Notes:             c.Notes,
		LastAppointmentAt: formatTimePtr(c.LastAppointmentAt),
		CreatedAt:         c.CreatedAt.Format(time.RFC3339),
	}
}

func ToSlotsResponse(date time.Time, slots []time.Time) SlotsResponse {
	return SlotsResponse{
		Date:  date.Format("2006-01-02"),
		Slots: formatTimes(slots),
	}
}

func ToCalendarDayResponse(d domain.DayAvailability) CalendarDayResponse {
	return CalendarDayResponse{
		Date:           d.Date,
		AvailableCount: d.AvailableCount,
		BookedCount:    d.BookedCount,
		Slots:          formatTimes(d.Slots),
	}
}

func ToRaffleResponse(r *domain.Raffle) RaffleResponse {
	return RaffleResponse{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		TicketPrice:  r.TicketPrice.StringFixed(2),
		Currency:     r.Currency,
		IsActive:     r.IsActive,
		MinNumber:    r.MinNumber,
		MaxNumber:    r.MaxNumber,
		TotalTickets: r.TotalTickets(),
		DrawDate:     formatTimePtr(r.DrawDate),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.TicketNumber) TicketResponse {
	return TicketResponse{
		Number:          t.Number,
		Status:          string(t.Status),
		ReservedByOrder: t.ReservedByOrder,
		ReservedUntil:   formatTimePtr(t.ReservedUntil),
	}
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	numbers := o.TicketNumbers
	if numbers == nil {
		numbers = []int{}
	}
	return OrderResponse{
		ID:             o.ID,
		RaffleID:       o.RaffleID,
		CustomerID:     o.CustomerID,
		Qty:            o.Qty,
		TotalAmount:    o.TotalAmount.StringFixed(2),
		Currency:       o.Currency,
		Status:         string(o.Status),
		TicketNumbers:  numbers,
		PaymentProofID: o.PaymentProofID,
		ExpiresAt:      formatTimePtr(o.ExpiresAt),
		PaidAt:         formatTimePtr(o.PaidAt),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func formatTimes(ts []time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Format(time.RFC3339))
	}
	return out
}
