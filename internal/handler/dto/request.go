package dto

type CustomerPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

type CreateServiceRequest struct {
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description"`
	DurationMinutes    int    `json:"duration_minutes" binding:"required,gt=0"`
	Price              string `json:"price" binding:"required"`
	Currency           string `json:"currency"`
	BufferTimeMinutes  int    `json:"buffer_time_minutes"`
	MaxBookingsPerDay  int    `json:"max_bookings_per_day"`
	AdvanceBookingDays int    `json:"advance_booking_days"`
}

type CreateAppointmentRequest struct {
	ServiceID   string          `json:"service_id" binding:"required,uuid"`
	Customer    CustomerPayload `json:"customer" binding:"required"`
	ScheduledAt string          `json:"scheduled_at" binding:"required"`
	Notes       string          `json:"notes"`
}

type ConfirmAppointmentRequest struct {
	PaymentTransactionID *string `json:"payment_transaction_id"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type CreateRaffleRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TicketPrice string `json:"ticket_price" binding:"required"`
	Currency    string `json:"currency"`
	MinNumber   *int   `json:"min_number"`
	MaxNumber   int    `json:"max_number" binding:"required"`
	DrawDate    string `json:"draw_date"`
}

type GenerateTicketsRequest struct {
	Force bool `json:"force"`
}

type ReserveSpecificRequest struct {
	Numbers  []int           `json:"numbers" binding:"required,min=1"`
	Customer CustomerPayload `json:"customer" binding:"required"`
}

type ReserveRandomRequest struct {
	Qty      int             `json:"qty" binding:"required,gt=0"`
	Customer CustomerPayload `json:"customer" binding:"required"`
}

type ConfirmPaymentRequest struct {
	PaymentProofID *string `json:"payment_proof_id"`
}
