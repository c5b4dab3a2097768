package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/handler/dto"
	"github.com/devpbeat/reservio/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	Create(ctx context.Context, tenantID string, input domain.CreateServiceInput) (*domain.Service, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Service, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Service, error)
}

type AvailabilitySvc interface {
	AvailableSlots(ctx context.Context, tenant *domain.Tenant, serviceID string, date time.Time, durationOverrideMinutes int) ([]time.Time, error)
	NextAvailableSlot(ctx context.Context, tenant *domain.Tenant, serviceID string, from *time.Time) (*time.Time, error)
	Calendar(ctx context.Context, tenant *domain.Tenant, serviceID string, start, end time.Time) ([]domain.DayAvailability, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]*domain.Appointment, error)
	Confirm(ctx context.Context, tenantID, id string, paymentTransactionID *string) (*domain.Appointment, error)
	Cancel(ctx context.Context, tenantID, id, reason string) (*domain.Appointment, error)
	Complete(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	MarkNoShow(ctx context.Context, tenantID, id string) (*domain.Appointment, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, tenantID string) ([]*domain.Customer, error)
}

type RaffleSvc interface {
	Create(ctx context.Context, tenantID string, input domain.CreateRaffleInput) (*domain.Raffle, error)
	Get(ctx context.Context, tenantID, id string) (*domain.Raffle, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Raffle, error)
	GenerateTickets(ctx context.Context, tenantID, raffleID string, force bool) (int, error)
	Availability(ctx context.Context, tenantID, raffleID string) (*domain.RaffleAvailability, error)
	Tickets(ctx context.Context, tenantID, raffleID string, status domain.TicketStatus) ([]*domain.TicketNumber, error)
}

type ReservationSvc interface {
	ReserveSpecific(ctx context.Context, tenant *domain.Tenant, raffleID string, numbers []int, customer domain.CustomerInput) (*domain.Order, error)
	ReserveRandom(ctx context.Context, tenant *domain.Tenant, raffleID string, qty int, customer domain.CustomerInput) (*domain.Order, error)
	Release(ctx context.Context, tenantID, orderID string) (int, error)
	ConfirmPaid(ctx context.Context, tenantID, orderID string, paymentProofID *string) (*domain.Order, error)
	GetOrder(ctx context.Context, tenantID, id string) (*domain.Order, error)
	ListPendingPayment(ctx context.Context, tenantID string) ([]*domain.Order, error)
}

type Handler struct {
	catalog      CatalogSvc
	availability AvailabilitySvc
	bookings     BookingSvc
	raffles      RaffleSvc
	reservations ReservationSvc
}

func NewHandler(
	catalog CatalogSvc,
	availability AvailabilitySvc,
	bookings BookingSvc,
	raffles RaffleSvc,
	reservations ReservationSvc,
) *Handler {
	return &Handler{
		catalog:      catalog,
		availability: availability,
		bookings:     bookings,
		raffles:      raffles,
		reservations: reservations,
	}
}

// Services

func (h *Handler) CreateService(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price"})
		return
	}

	input := domain.CreateServiceInput{
		Name:               req.Name,
		Description:        req.Description,
		DurationMinutes:    req.DurationMinutes,
		Price:              price,
		Currency:           req.Currency,
		BufferTimeMinutes:  req.BufferTimeMinutes,
		MaxBookingsPerDay:  req.MaxBookingsPerDay,
		AdvanceBookingDays: req.AdvanceBookingDays,
	}

	svc, err := h.catalog.Create(c.Request.Context(), tenant.ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

func (h *Handler) GetService(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	svc, err := h.catalog.Get(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(svc))
}

func (h *Handler) ListServices(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") != "false"

	services, err := h.catalog.List(c.Request.Context(), tenant.ID, activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Availability

func (h *Handler) GetAvailability(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	duration := 0
	if raw := c.Query("duration_minutes"); raw != "" {
		if duration, err = parsePositiveInt(raw); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid duration_minutes"})
			return
		}
	}

	slots, err := h.availability.AvailableSlots(c.Request.Context(), tenant, serviceID, date, duration)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotsResponse(date, slots))
}

func (h *Handler) GetNextSlot(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	var from *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from, expected RFC3339"})
			return
		}
		from = &parsed
	}

	slot, err := h.availability.NextAvailableSlot(c.Request.Context(), tenant, serviceID, from)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if slot == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "no available slot found"})
		return
	}

	c.JSON(http.StatusOK, dto.NextSlotResponse{NextSlot: slot.Format(time.RFC3339)})
}

func (h *Handler) GetCalendar(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	serviceID := c.Param("id")
	if _, err := uuid.Parse(serviceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected YYYY-MM-DD"})
		return
	}

	days, err := h.availability.Calendar(c.Request.Context(), tenant, serviceID, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CalendarDayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, dto.ToCalendarDayResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

// Appointments

func (h *Handler) CreateAppointment(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid scheduled_at format, expected RFC3339"})
		return
	}

	input := domain.CreateAppointmentInput{
		TenantID:    tenant.ID,
		ServiceID:   req.ServiceID,
		Customer:    toCustomerInput(req.Customer),
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	}

	appt, err := h.bookings.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appt))
}

func (h *Handler) GetAppointment(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	appt, err := h.bookings.Get(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

func (h *Handler) ListAppointments(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end, expected YYYY-MM-DD"})
		return
	}

	// The end date is inclusive on the API; the repository range is half-open.
	appts, err := h.bookings.ListAppointments(c.Request.Context(), tenant.ID, start, end.AddDate(0, 0, 1))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		resp = append(resp, dto.ToAppointmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmAppointment(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	var req dto.ConfirmAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	appt, err := h.bookings.Confirm(c.Request.Context(), tenant.ID, id, req.PaymentTransactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

func (h *Handler) CancelAppointment(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	var req dto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	appt, err := h.bookings.Cancel(c.Request.Context(), tenant.ID, id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

func (h *Handler) CompleteAppointment(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	appt, err := h.bookings.Complete(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

func (h *Handler) MarkAppointmentNoShow(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid appointment id"})
		return
	}

	appt, err := h.bookings.MarkNoShow(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appt))
}

// Customers

func (h *Handler) GetCustomer(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	customer, err := h.bookings.GetCustomer(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *Handler) ListCustomers(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	customers, err := h.bookings.ListCustomers(c.Request.Context(), tenant.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		resp = append(resp, dto.ToCustomerResponse(cust))
	}

	c.JSON(http.StatusOK, resp)
}

// Raffles

func (h *Handler) CreateRaffle(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	var req dto.CreateRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.TicketPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket_price"})
		return
	}

	minNumber := 1
	if req.MinNumber != nil {
		minNumber = *req.MinNumber
	}

	var drawDate *time.Time
	if req.DrawDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DrawDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid draw_date format, expected RFC3339"})
			return
		}
		drawDate = &parsed
	}

	input := domain.CreateRaffleInput{
		Title:       req.Title,
		Description: req.Description,
		TicketPrice: price,
		Currency:    req.Currency,
		MinNumber:   minNumber,
		MaxNumber:   req.MaxNumber,
		DrawDate:    drawDate,
	}

	raffle, err := h.raffles.Create(c.Request.Context(), tenant.ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRaffleResponse(raffle))
}

func (h *Handler) GetRaffle(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid raffle id"})
		return
	}

	raffle, err := h.raffles.Get(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRaffleResponse(raffle))
}

func (h *Handler) ListRaffles(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	activeOnly := c.Query("active") != "false"

	raffles, err := h.raffles.List(c.Request.Context(), tenant.ID, activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RaffleResponse, 0, len(raffles))
	for _, r := range raffles {
		resp = append(resp, dto.ToRaffleResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GenerateTickets(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid raffle id"})
		return
	}

	var req dto.GenerateTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	generated, err := h.raffles.GenerateTickets(c.Request.Context(), tenant.ID, id, req.Force)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateTicketsResponse{Generated: generated})
}

func (h *Handler) GetRaffleAvailability(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid raffle id"})
		return
	}

	availability, err := h.raffles.Availability(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *Handler) ListTickets(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid raffle id"})
		return
	}

	status := domain.TicketStatus(c.Query("status"))
	switch status {
	case "", domain.TicketStatusAvailable, domain.TicketStatusReserved, domain.TicketStatusSold:
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status"})
		return
	}

	tickets, err := h.raffles.Tickets(c.Request.Context(), tenant.ID, id, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Orders

func (h *Handler) ReserveTickets(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	raffleID := c.Param("id")
	if _, err := uuid.Parse(raffleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid raffle id"})
		return
	}

	var req dto.ReserveSpecificRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.reservations.ReserveSpecific(
		c.Request.Context(), tenant, raffleID, req.Numbers, toCustomerInput(req.Customer),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) ReserveRandomTickets(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	raffleID := c.Param("id")
	if _, err := uuid.Parse(raffleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid raffle id"})
		return
	}

	var req dto.ReserveRandomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.reservations.ReserveRandom(
		c.Request.Context(), tenant, raffleID, req.Qty, toCustomerInput(req.Customer),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.reservations.GetOrder(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) ListPendingOrders(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	orders, err := h.reservations.ListPendingPayment(c.Request.Context(), tenant.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmOrderPayment(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.reservations.ConfirmPaid(c.Request.Context(), tenant.ID, id, req.PaymentProofID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) CancelOrder(c *ginext.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	released, err := h.reservations.Release(c.Request.Context(), tenant.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseResponse{Status: "cancelled", TicketsReleased: released})
}

func (h *Handler) tenant(c *ginext.Context) (*domain.Tenant, bool) {
	tenant, ok := middleware.TenantFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "tenant not resolved"})
		return nil, false
	}
	return tenant, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrRaffleNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable),
		errors.Is(err, domain.ErrInvalidTicketNumbers),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNoReservedTickets),
		errors.Is(err, domain.ErrTicketsExist):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTimeWindow):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toCustomerInput(p dto.CustomerPayload) domain.CustomerInput {
	return domain.CustomerInput{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
	}
}

func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.New("not a positive integer")
	}
	return n, nil
}
