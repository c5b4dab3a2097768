package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	orderRepo   ports.OrderRepo
	paymentRepo ports.PaymentRepo
	notifier    ports.OrderNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewReservationService(
	orderRepo ports.OrderRepo,
	paymentRepo ports.PaymentRepo,
	notifier ports.OrderNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// ReserveSpecific places a hold on the exact requested numbers.
func (s *ReservationService) ReserveSpecific(
	ctx context.Context,
	tenant *domain.Tenant,
	raffleID string,
	numbers []int,
	customer domain.CustomerInput,
) (*domain.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := checkQuantity(tenant, len(numbers)); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%w: duplicate numbers are not allowed", domain.ErrInvalidTicketNumbers)
		}
		seen[n] = struct{}{}
	}

	order, err := s.orderRepo.ReserveSpecific(ctx, s.reserveInput(tenant, raffleID, customer), numbers)
	if err != nil {
		return nil, err
	}

	s.logReserved(order)
	return order, nil
}

// ReserveRandom places a hold on qty uniformly sampled available numbers.
func (s *ReservationService) ReserveRandom(
	ctx context.Context,
	tenant *domain.Tenant,
	raffleID string,
	qty int,
	customer domain.CustomerInput,
) (*domain.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := checkQuantity(tenant, qty); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.ReserveRandom(ctx, s.reserveInput(tenant, raffleID, customer), qty)
	if err != nil {
		return nil, err
	}

	s.logReserved(order)
	return order, nil
}

// Release returns the order's tickets to the pool and cancels the order.
// It is idempotent: releasing an already cancelled order returns 0.
func (s *ReservationService) Release(ctx context.Context, tenantID, orderID string) (int, error) {
	released, err := s.orderRepo.Release(ctx, tenantID, orderID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("order released",
		logger.String("order_id", orderID),
		logger.String("tenant_id", tenantID),
		logger.Int("tickets_released", released),
	)

	return released, nil
}

// ConfirmPaid marks the order paid and its tickets sold, records the payment
// proof when supplied, and notifies the tenant in the background.
func (s *ReservationService) ConfirmPaid(ctx context.Context, tenantID, orderID string, paymentProofID *string) (*domain.Order, error) {
	order, err := s.orderRepo.ConfirmPaid(ctx, tenantID, orderID, paymentProofID)
	if err != nil {
		return nil, err
	}

	if paymentProofID != nil {
		s.recordPayment(ctx, order, *paymentProofID)
	}

	s.logger.Info("order payment confirmed",
		logger.String("order_id", order.ID),
		logger.String("tenant_id", tenantID),
		logger.Int("qty", order.Qty),
	)

	go s.notifier.NotifyPaymentConfirmed(context.WithoutCancel(ctx), order)

	return order, nil
}

func (s *ReservationService) MarkExpired(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.MarkExpired(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderStatusExpired {
		s.logger.Info("order expired",
			logger.String("order_id", order.ID),
			logger.String("tenant_id", tenantID),
		)
	}

	return order, nil
}

// ExpireOverdue sweeps every overdue pending order. Called by the scheduler.
func (s *ReservationService) ExpireOverdue(ctx context.Context) (int, error) {
	expired, err := s.orderRepo.ExpireOverdue(ctx)
	if err != nil {
		return 0, err
	}

	if len(expired) > 0 {
		s.logger.Info("overdue orders expired", logger.Int("count", len(expired)))
	}

	return len(expired), nil
}

func (s *ReservationService) GetOrder(ctx context.Context, tenantID, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, tenantID, id)
}

func (s *ReservationService) ListPendingPayment(ctx context.Context, tenantID string) ([]*domain.Order, error) {
	return s.orderRepo.ListPendingPayment(ctx, tenantID)
}

func (s *ReservationService) reserveInput(tenant *domain.Tenant, raffleID string, customer domain.CustomerInput) domain.ReserveInput {
	return domain.ReserveInput{
		TenantID: tenant.ID,
		RaffleID: raffleID,
		Customer: customer,
		Timeout:  tenant.Settings.ReservationTimeout(),
	}
}

func (s *ReservationService) logReserved(order *domain.Order) {
	s.logger.Info("tickets reserved",
		logger.String("order_id", order.ID),
		logger.String("raffle_id", order.RaffleID),
		logger.String("tenant_id", order.TenantID),
		logger.Int("qty", order.Qty),
	)
}

func (s *ReservationService) recordPayment(ctx context.Context, order *domain.Order, externalID string) {
	now := s.now().UTC()
	txn := &domain.PaymentTransaction{
		ID:          uuid.New().String(),
		TenantID:    order.TenantID,
		Provider:    domain.PaymentProviderManual,
		ExternalID:  externalID,
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		Status:      "confirmed",
		OrderID:     &order.ID,
		CreatedAt:   now,
		ConfirmedAt: &now,
	}
	if err := s.paymentRepo.Create(ctx, txn); err != nil {
		s.logger.Error("failed to record payment transaction",
			logger.String("order_id", order.ID),
			logger.String("external_id", externalID),
			logger.Any("error", err),
		)
	}
}

func validateCustomer(c domain.CustomerInput) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}
	return nil
}

func checkQuantity(tenant *domain.Tenant, qty int) error {
	settings := tenant.Settings.Normalized()
	if qty < settings.MinTicketsPerOrder {
		return fmt.Errorf("%w: minimum %d ticket(s) per order", domain.ErrInvalidQuantity, settings.MinTicketsPerOrder)
	}
	if qty > settings.MaxTicketsPerOrder {
		return fmt.Errorf("%w: maximum %d ticket(s) per order", domain.ErrInvalidQuantity, settings.MaxTicketsPerOrder)
	}
	return nil
}
