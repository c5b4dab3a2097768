package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T) (*BookingService, *mocks.MockAppointmentRepo, *mocks.MockCustomerRepo, *mocks.MockPaymentRepo) {
	t.Helper()
	apptRepo := mocks.NewMockAppointmentRepo(t)
	customerRepo := mocks.NewMockCustomerRepo(t)
	paymentRepo := mocks.NewMockPaymentRepo(t)
	svc := NewBookingService(apptRepo, customerRepo, paymentRepo, newTestLogger(t))
	return svc, apptRepo, customerRepo, paymentRepo
}

func validBookingInput(scheduledAt time.Time) domain.CreateAppointmentInput {
	return domain.CreateAppointmentInput{
		TenantID:    "t1",
		ServiceID:   "s1",
		Customer:    domain.CustomerInput{Name: "Ana", Phone: "+595981111111"},
		ScheduledAt: scheduledAt,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	input := validBookingInput(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	created := &domain.Appointment{ID: "a1", TenantID: "t1", ServiceID: "s1", ScheduledAt: input.ScheduledAt}

	apptRepo.EXPECT().Create(mock.Anything, input).Return(created, nil)

	appt, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "a1", appt.ID)
}

func TestBookingService_Create_MissingCustomerName(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	input := validBookingInput(time.Now().Add(time.Hour))
	input.Customer.Name = "  "

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_MissingCustomerPhone(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	input := validBookingInput(time.Now().Add(time.Hour))
	input.Customer.Phone = ""

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_PastSlot(t *testing.T) {
	svc, _, _, _ := newBookingService(t)
	svc.now = fixedNow(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	input := validBookingInput(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidTimeWindow)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	input := validBookingInput(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	apptRepo.EXPECT().Create(mock.Anything, input).Return(nil, domain.ErrSlotUnavailable)

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestBookingService_Confirm_RecordsPayment(t *testing.T) {
	svc, apptRepo, _, paymentRepo := newBookingService(t)

	txnID := "bancard-123"
	appt := &domain.Appointment{
		ID:          "a1",
		TenantID:    "t1",
		Status:      domain.AppointmentStatusConfirmed,
		TotalAmount: decimal.RequireFromString("150000"),
		Currency:    "PYG",
	}

	apptRepo.EXPECT().Confirm(mock.Anything, "t1", "a1", &txnID).Return(appt, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, txn *domain.PaymentTransaction) {
			assert.Equal(t, domain.PaymentProviderBancard, txn.Provider)
			assert.Equal(t, txnID, txn.ExternalID)
			require.NotNil(t, txn.AppointmentID)
			assert.Equal(t, "a1", *txn.AppointmentID)
			assert.Nil(t, txn.OrderID)
			assert.True(t, txn.Amount.Equal(appt.TotalAmount))
		}).
		Return(nil)

	got, err := svc.Confirm(context.Background(), "t1", "a1", &txnID)

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusConfirmed, got.Status)
}

func TestBookingService_Confirm_PaymentRecordFailureIsNotFatal(t *testing.T) {
	svc, apptRepo, _, paymentRepo := newBookingService(t)

	txnID := "bancard-123"
	appt := &domain.Appointment{ID: "a1", TenantID: "t1", Status: domain.AppointmentStatusConfirmed}

	apptRepo.EXPECT().Confirm(mock.Anything, "t1", "a1", &txnID).Return(appt, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Confirm(context.Background(), "t1", "a1", &txnID)

	require.NoError(t, err)
}

func TestBookingService_Confirm_WithoutPayment(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	appt := &domain.Appointment{ID: "a1", TenantID: "t1", Status: domain.AppointmentStatusConfirmed}
	apptRepo.EXPECT().Confirm(mock.Anything, "t1", "a1", (*string)(nil)).Return(appt, nil)

	_, err := svc.Confirm(context.Background(), "t1", "a1", nil)

	require.NoError(t, err)
}

func TestBookingService_Cancel_PropagatesError(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	apptRepo.EXPECT().Cancel(mock.Anything, "t1", "a1", "client request").
		Return(nil, domain.ErrInvalidTransition)

	_, err := svc.Cancel(context.Background(), "t1", "a1", "client request")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Complete_Success(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	appt := &domain.Appointment{ID: "a1", Status: domain.AppointmentStatusCompleted}
	apptRepo.EXPECT().Complete(mock.Anything, "t1", "a1").Return(appt, nil)

	got, err := svc.Complete(context.Background(), "t1", "a1")

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCompleted, got.Status)
}

func TestBookingService_MarkNoShow_Success(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	appt := &domain.Appointment{ID: "a1", Status: domain.AppointmentStatusNoShow}
	apptRepo.EXPECT().MarkNoShow(mock.Anything, "t1", "a1").Return(appt, nil)

	got, err := svc.MarkNoShow(context.Background(), "t1", "a1")

	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusNoShow, got.Status)
}

func TestBookingService_ListAppointments(t *testing.T) {
	svc, apptRepo, _, _ := newBookingService(t)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)
	appts := []*domain.Appointment{{ID: "a1"}, {ID: "a2"}}

	apptRepo.EXPECT().ListBetween(mock.Anything, "t1", from, to).Return(appts, nil)

	got, err := svc.ListAppointments(context.Background(), "t1", from, to)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_ListAppointments_InvertedRange(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListAppointments(context.Background(), "t1", from, from.AddDate(0, 0, -1))

	assert.ErrorIs(t, err, domain.ErrInvalidTimeWindow)
}

func TestBookingService_ListCustomers(t *testing.T) {
	svc, _, customerRepo, _ := newBookingService(t)

	customers := []*domain.Customer{{ID: "c1", Name: "Ana"}}
	customerRepo.EXPECT().List(mock.Anything, "t1").Return(customers, nil)

	got, err := svc.ListCustomers(context.Background(), "t1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}
