package domain

import "errors"

var (
	ErrTenantNotFound      = errors.New("tenant not found or inactive")
	ErrServiceNotFound     = errors.New("service not found or inactive")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrRaffleNotFound      = errors.New("raffle not found or inactive")
	ErrOrderNotFound       = errors.New("order not found")
)

var (
	ErrInvalidTimeWindow    = errors.New("invalid time window")
	ErrSlotUnavailable      = errors.New("slot not available")
	ErrInvalidQuantity      = errors.New("invalid ticket quantity")
	ErrInvalidTicketNumbers = errors.New("invalid ticket numbers")
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrNoReservedTickets    = errors.New("no tickets reserved for this order")
	ErrTicketsExist         = errors.New("tickets already generated for this raffle")
)

var (
	ErrValidation = errors.New("validation error")
)
