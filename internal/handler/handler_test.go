package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/handler/dto"
	hmocks "github.com/devpbeat/reservio/internal/handler/mocks"
	"github.com/devpbeat/reservio/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	catalog      *hmocks.MockCatalogSvc
	availability *hmocks.MockAvailabilitySvc
	bookings     *hmocks.MockBookingSvc
	raffles      *hmocks.MockRaffleSvc
	reservations *hmocks.MockReservationSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()

	m := testMocks{
		catalog:      hmocks.NewMockCatalogSvc(t),
		availability: hmocks.NewMockAvailabilitySvc(t),
		bookings:     hmocks.NewMockBookingSvc(t),
		raffles:      hmocks.NewMockRaffleSvc(t),
		reservations: hmocks.NewMockReservationSvc(t),
	}

	h := NewHandler(m.catalog, m.availability, m.bookings, m.raffles, m.reservations)

	tenant := &domain.Tenant{ID: "t1", Slug: "demo", IsActive: true}

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		c.Set(middleware.TenantKey, tenant)
		c.Next()
	})
	{
		api.POST("/services", h.CreateService)
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetService)
		api.GET("/services/:id/availability", h.GetAvailability)
		api.GET("/services/:id/next-slot", h.GetNextSlot)
		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments", h.ListAppointments)
		api.POST("/appointments/:id/confirm", h.ConfirmAppointment)
		api.POST("/appointments/:id/cancel", h.CancelAppointment)
		api.POST("/raffles", h.CreateRaffle)
		api.POST("/raffles/:id/reserve", h.ReserveTickets)
		api.POST("/raffles/:id/reserve-random", h.ReserveRandomTickets)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/confirm-payment", h.ConfirmOrderPayment)
		api.POST("/orders/:id/cancel", h.CancelOrder)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Services ---

func TestHandler_CreateService_Success(t *testing.T) {
	m, r := setupRouter(t)

	svc := &domain.Service{
		ID:              uuid.New().String(),
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           decimal.RequireFromString("50000"),
		Currency:        "PYG",
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	m.catalog.EXPECT().Create(mock.Anything, "t1", mock.Anything).Return(svc, nil)

	w := doJSON(t, r, http.MethodPost, "/api/services", dto.CreateServiceRequest{
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           "50000",
		Currency:        "PYG",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Haircut", resp.Name)
	assert.Equal(t, "50000.00", resp.Price)
}

func TestHandler_CreateService_InvalidPrice(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/services", dto.CreateServiceRequest{
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           "not-a-number",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetService_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.catalog.EXPECT().Get(mock.Anything, "t1", id).Return(nil, domain.ErrServiceNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/services/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots := []time.Time{date.Add(9 * time.Hour), date.Add(10 * time.Hour)}

	m.availability.EXPECT().AvailableSlots(mock.Anything, mock.Anything, id, date, 0).Return(slots, nil)

	w := doJSON(t, r, http.MethodGet, "/api/services/"+id+"/availability?date=2026-03-10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Len(t, resp.Slots, 2)
}

func TestHandler_GetAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/services/"+id+"/availability?date=tomorrow", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetNextSlot_NoneFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.availability.EXPECT().NextAvailableSlot(mock.Anything, mock.Anything, id, (*time.Time)(nil)).Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/services/"+id+"/next-slot", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Appointments ---

func TestHandler_CreateAppointment_Success(t *testing.T) {
	m, r := setupRouter(t)

	serviceID := uuid.New().String()
	scheduledAt := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	appt := &domain.Appointment{
		ID:              uuid.New().String(),
		ServiceID:       serviceID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: 30,
		Status:          domain.AppointmentStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		CreatedAt:       time.Now(),
	}

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(appt, nil)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		ServiceID:   serviceID,
		Customer:    dto.CustomerPayload{Name: "Ana", Phone: "+595981111111"},
		ScheduledAt: scheduledAt.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.AppointmentStatusPending), resp.Status)
}

func TestHandler_CreateAppointment_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		ServiceID:   uuid.New().String(),
		Customer:    dto.CustomerPayload{Name: "Ana", Phone: "+595981111111"},
		ScheduledAt: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateAppointment_SlotTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", dto.CreateAppointmentRequest{
		ServiceID:   uuid.New().String(),
		Customer:    dto.CustomerPayload{Name: "Ana", Phone: "+595981111111"},
		ScheduledAt: time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListAppointments_Success(t *testing.T) {
	m, r := setupRouter(t)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	appts := []*domain.Appointment{
		{ID: uuid.New().String(), ScheduledAt: from.Add(9 * time.Hour), CreatedAt: time.Now()},
		{ID: uuid.New().String(), ScheduledAt: from.Add(34 * time.Hour), CreatedAt: time.Now()},
	}

	m.bookings.EXPECT().ListAppointments(mock.Anything, "t1", from, to).Return(appts, nil)

	w := doJSON(t, r, http.MethodGet, "/api/appointments?start=2026-03-10&end=2026-03-11", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListAppointments_BadRange(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/appointments?start=2026-03-10&end=yesterday", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmAppointment_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().Confirm(mock.Anything, "t1", id, (*string)(nil)).
		Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/appointments/"+id+"/confirm", dto.ConfirmAppointmentRequest{})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelAppointment_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	appt := &domain.Appointment{ID: id, Status: domain.AppointmentStatusCancelled, CreatedAt: time.Now()}
	m.bookings.EXPECT().Cancel(mock.Anything, "t1", id, "sick").Return(appt, nil)

	w := doJSON(t, r, http.MethodPost, "/api/appointments/"+id+"/cancel", dto.CancelAppointmentRequest{Reason: "sick"})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Raffles and orders ---

func TestHandler_CreateRaffle_Success(t *testing.T) {
	m, r := setupRouter(t)

	raffle := &domain.Raffle{
		ID:          uuid.New().String(),
		Title:       "Grand Prize",
		TicketPrice: decimal.RequireFromString("10000"),
		Currency:    "PYG",
		MinNumber:   1,
		MaxNumber:   500,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	m.raffles.EXPECT().Create(mock.Anything, "t1", mock.Anything).Return(raffle, nil)

	w := doJSON(t, r, http.MethodPost, "/api/raffles", dto.CreateRaffleRequest{
		Title:       "Grand Prize",
		TicketPrice: "10000",
		MaxNumber:   500,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RaffleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 500, resp.TotalTickets)
}

func TestHandler_ReserveTickets_Success(t *testing.T) {
	m, r := setupRouter(t)

	raffleID := uuid.New().String()
	order := &domain.Order{
		ID:            uuid.New().String(),
		RaffleID:      raffleID,
		Qty:           2,
		TotalAmount:   decimal.RequireFromString("20000"),
		Currency:      "PYG",
		Status:        domain.OrderStatusPendingPayment,
		TicketNumbers: []int{7, 13},
		CreatedAt:     time.Now(),
	}

	m.reservations.EXPECT().ReserveSpecific(mock.Anything, mock.Anything, raffleID, []int{7, 13}, mock.Anything).
		Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/raffles/"+raffleID+"/reserve", dto.ReserveSpecificRequest{
		Numbers:  []int{7, 13},
		Customer: dto.CustomerPayload{Name: "Ana", Phone: "+595981111111"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{7, 13}, resp.TicketNumbers)
	assert.Equal(t, string(domain.OrderStatusPendingPayment), resp.Status)
}

func TestHandler_ReserveTickets_Unavailable(t *testing.T) {
	m, r := setupRouter(t)

	raffleID := uuid.New().String()
	m.reservations.EXPECT().ReserveSpecific(mock.Anything, mock.Anything, raffleID, []int{7}, mock.Anything).
		Return(nil, domain.ErrInvalidTicketNumbers)

	w := doJSON(t, r, http.MethodPost, "/api/raffles/"+raffleID+"/reserve", dto.ReserveSpecificRequest{
		Numbers:  []int{7},
		Customer: dto.CustomerPayload{Name: "Ana", Phone: "+595981111111"},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReserveRandomTickets_Success(t *testing.T) {
	m, r := setupRouter(t)

	raffleID := uuid.New().String()
	order := &domain.Order{
		ID:            uuid.New().String(),
		RaffleID:      raffleID,
		Qty:           3,
		Status:        domain.OrderStatusPendingPayment,
		TicketNumbers: []int{2, 9, 40},
		CreatedAt:     time.Now(),
	}

	m.reservations.EXPECT().ReserveRandom(mock.Anything, mock.Anything, raffleID, 3, mock.Anything).
		Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/raffles/"+raffleID+"/reserve-random", dto.ReserveRandomRequest{
		Qty:      3,
		Customer: dto.CustomerPayload{Name: "Ana", Phone: "+595981111111"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservations.EXPECT().GetOrder(mock.Anything, "t1", id).Return(nil, domain.ErrOrderNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/orders/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetOrder_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmOrderPayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	proof := "transfer-789"
	order := &domain.Order{ID: id, Status: domain.OrderStatusPaid, PaymentProofID: &proof, CreatedAt: time.Now()}

	m.reservations.EXPECT().ConfirmPaid(mock.Anything, "t1", id, &proof).Return(order, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders/"+id+"/confirm-payment", dto.ConfirmPaymentRequest{
		PaymentProofID: &proof,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.OrderStatusPaid), resp.Status)
}

func TestHandler_CancelOrder_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservations.EXPECT().Release(mock.Anything, "t1", id).Return(2, nil)

	w := doJSON(t, r, http.MethodPost, "/api/orders/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReleaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TicketsReleased)
}
