package service

import (
	"context"
	"testing"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockOrderRepo, *mocks.MockPaymentRepo, *mocks.MockOrderNotifier) {
	t.Helper()
	orderRepo := mocks.NewMockOrderRepo(t)
	paymentRepo := mocks.NewMockPaymentRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	svc := NewReservationService(orderRepo, paymentRepo, notifier, newTestLogger(t))
	return svc, orderRepo, paymentRepo, notifier
}

func raffleTenant() *domain.Tenant {
	return &domain.Tenant{
		ID: "t1",
		Settings: domain.TenantSettings{
			MinTicketsPerOrder:        2,
			MaxTicketsPerOrder:        5,
			ReservationTimeoutMinutes: 20,
		},
	}
}

func buyer() domain.CustomerInput {
	return domain.CustomerInput{Name: "Ana", Phone: "+595981111111"}
}

func TestReservationService_ReserveSpecific_Success(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	order := &domain.Order{ID: "o1", TenantID: "t1", RaffleID: "r1", Qty: 3, TicketNumbers: []int{7, 13, 21}}

	orderRepo.EXPECT().ReserveSpecific(mock.Anything, mock.Anything, []int{7, 13, 21}).
		Run(func(ctx context.Context, input domain.ReserveInput, numbers []int) {
			assert.Equal(t, "t1", input.TenantID)
			assert.Equal(t, "r1", input.RaffleID)
			assert.Equal(t, 20*time.Minute, input.Timeout)
		}).
		Return(order, nil)

	got, err := svc.ReserveSpecific(context.Background(), raffleTenant(), "r1", []int{7, 13, 21}, buyer())

	require.NoError(t, err)
	assert.Equal(t, []int{7, 13, 21}, got.TicketNumbers)
}

func TestReservationService_ReserveSpecific_BelowMinimum(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.ReserveSpecific(context.Background(), raffleTenant(), "r1", []int{7}, buyer())

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestReservationService_ReserveSpecific_AboveMaximum(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.ReserveSpecific(context.Background(), raffleTenant(), "r1", []int{1, 2, 3, 4, 5, 6}, buyer())

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestReservationService_ReserveSpecific_DuplicateNumbers(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.ReserveSpecific(context.Background(), raffleTenant(), "r1", []int{7, 13, 7}, buyer())

	assert.ErrorIs(t, err, domain.ErrInvalidTicketNumbers)
}

func TestReservationService_ReserveSpecific_MissingCustomer(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.ReserveSpecific(context.Background(), raffleTenant(), "r1", []int{7, 13}, domain.CustomerInput{Phone: "+595981111111"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ReserveRandom_Success(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	order := &domain.Order{ID: "o1", Qty: 3, TicketNumbers: []int{2, 9, 40}}
	orderRepo.EXPECT().ReserveRandom(mock.Anything, mock.Anything, 3).Return(order, nil)

	got, err := svc.ReserveRandom(context.Background(), raffleTenant(), "r1", 3, buyer())

	require.NoError(t, err)
	assert.Equal(t, 3, got.Qty)
}

func TestReservationService_ReserveRandom_QuantityBounds(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.ReserveRandom(context.Background(), raffleTenant(), "r1", 1, buyer())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.ReserveRandom(context.Background(), raffleTenant(), "r1", 6, buyer())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestReservationService_Release(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	orderRepo.EXPECT().Release(mock.Anything, "t1", "o1").Return(3, nil)

	released, err := svc.Release(context.Background(), "t1", "o1")

	require.NoError(t, err)
	assert.Equal(t, 3, released)
}

func TestReservationService_Release_AlreadyCancelled(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	orderRepo.EXPECT().Release(mock.Anything, "t1", "o1").Return(0, nil)

	released, err := svc.Release(context.Background(), "t1", "o1")

	require.NoError(t, err)
	assert.Zero(t, released)
}

func TestReservationService_ConfirmPaid_RecordsPaymentAndNotifies(t *testing.T) {
	svc, orderRepo, paymentRepo, notifier := newReservationService(t)

	proofID := "transfer-789"
	order := &domain.Order{
		ID:          "o1",
		TenantID:    "t1",
		Status:      domain.OrderStatusPaid,
		Qty:         3,
		TotalAmount: decimal.RequireFromString("30000"),
		Currency:    "PYG",
	}

	orderRepo.EXPECT().ConfirmPaid(mock.Anything, "t1", "o1", &proofID).Return(order, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, txn *domain.PaymentTransaction) {
			assert.Equal(t, domain.PaymentProviderManual, txn.Provider)
			assert.Equal(t, proofID, txn.ExternalID)
			require.NotNil(t, txn.OrderID)
			assert.Equal(t, "o1", *txn.OrderID)
			assert.Equal(t, "PYG", txn.Currency)
		}).
		Return(nil)
	notifier.EXPECT().NotifyPaymentConfirmed(mock.Anything, order).Return()

	got, err := svc.ConfirmPaid(context.Background(), "t1", "o1", &proofID)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, got.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_ConfirmPaid_WithoutProof(t *testing.T) {
	svc, orderRepo, _, notifier := newReservationService(t)

	order := &domain.Order{ID: "o1", TenantID: "t1", Status: domain.OrderStatusPaid}
	orderRepo.EXPECT().ConfirmPaid(mock.Anything, "t1", "o1", (*string)(nil)).Return(order, nil)
	notifier.EXPECT().NotifyPaymentConfirmed(mock.Anything, order).Return()

	_, err := svc.ConfirmPaid(context.Background(), "t1", "o1", nil)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_ConfirmPaid_NoReservedTickets(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	// The lazy sweep can release an expired hold while the order stays
	// PENDING_PAYMENT; confirming afterwards must fail, never re-sell the
	// released tickets, and record no payment or notification.
	proofID := "transfer-789"
	orderRepo.EXPECT().ConfirmPaid(mock.Anything, "t1", "o1", &proofID).
		Return(nil, domain.ErrNoReservedTickets)

	_, err := svc.ConfirmPaid(context.Background(), "t1", "o1", &proofID)

	assert.ErrorIs(t, err, domain.ErrNoReservedTickets)
}

func TestReservationService_ConfirmPaid_InvalidTransition(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	orderRepo.EXPECT().ConfirmPaid(mock.Anything, "t1", "o1", (*string)(nil)).
		Return(nil, domain.ErrInvalidTransition)

	_, err := svc.ConfirmPaid(context.Background(), "t1", "o1", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_ExpireOverdue(t *testing.T) {
	svc, orderRepo, _, _ := newReservationService(t)

	expired := []*domain.Order{{ID: "o1"}, {ID: "o2"}}
	orderRepo.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)

	count, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
