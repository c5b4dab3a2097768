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

type BookingService struct {
	apptRepo     ports.AppointmentRepo
	customerRepo ports.CustomerRepo
	paymentRepo  ports.PaymentRepo
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	apptRepo ports.AppointmentRepo,
	customerRepo ports.CustomerRepo,
	paymentRepo ports.PaymentRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		apptRepo:     apptRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error) {
	if strings.TrimSpace(input.Customer.Name) == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Customer.Phone) == "" {
		return nil, fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}
	if !input.ScheduledAt.After(s.now()) {
		return nil, fmt.Errorf("%w: scheduled time must be in the future", domain.ErrInvalidTimeWindow)
	}

	appt, err := s.apptRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment created",
		logger.String("appointment_id", appt.ID),
		logger.String("tenant_id", appt.TenantID),
		logger.String("service_id", appt.ServiceID),
		logger.String("scheduled_at", appt.ScheduledAt.Format(time.RFC3339)),
	)

	return appt, nil
}

func (s *BookingService) Get(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	return s.apptRepo.GetByID(ctx, tenantID, id)
}

// Confirm moves a PENDING appointment to CONFIRMED. When a payment
// transaction id is supplied the payment is recorded best-effort; a failure
// to record it never rolls back the confirmation.
func (s *BookingService) Confirm(ctx context.Context, tenantID, id string, paymentTransactionID *string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.Confirm(ctx, tenantID, id, paymentTransactionID)
	if err != nil {
		return nil, err
	}

	if paymentTransactionID != nil {
		s.recordPayment(ctx, appt, *paymentTransactionID)
	}

	s.logger.Info("appointment confirmed",
		logger.String("appointment_id", appt.ID),
		logger.String("tenant_id", tenantID),
	)

	return appt, nil
}

func (s *BookingService) Cancel(ctx context.Context, tenantID, id, reason string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.Cancel(ctx, tenantID, id, reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment cancelled",
		logger.String("appointment_id", appt.ID),
		logger.String("tenant_id", tenantID),
		logger.String("reason", reason),
	)

	return appt, nil
}

func (s *BookingService) Complete(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.Complete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment completed",
		logger.String("appointment_id", appt.ID),
		logger.String("tenant_id", tenantID),
	)

	return appt, nil
}

func (s *BookingService) MarkNoShow(ctx context.Context, tenantID, id string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.MarkNoShow(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment marked no-show",
		logger.String("appointment_id", appt.ID),
		logger.String("tenant_id", tenantID),
	)

	return appt, nil
}

func (s *BookingService) ListAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]*domain.Appointment, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date is before start date", domain.ErrInvalidTimeWindow)
	}
	return s.apptRepo.ListBetween(ctx, tenantID, from, to)
}

func (s *BookingService) GetCustomer(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, tenantID, id)
}

func (s *BookingService) ListCustomers(ctx context.Context, tenantID string) ([]*domain.Customer, error) {
	return s.customerRepo.List(ctx, tenantID)
}

func (s *BookingService) recordPayment(ctx context.Context, appt *domain.Appointment, externalID string) {
	now := s.now().UTC()
	txn := &domain.PaymentTransaction{
		ID:            uuid.New().String(),
		TenantID:      appt.TenantID,
		Provider:      domain.PaymentProviderBancard,
		ExternalID:    externalID,
		Amount:        appt.TotalAmount,
		Currency:      appt.Currency,
		Status:        "confirmed",
		AppointmentID: &appt.ID,
		CreatedAt:     now,
		ConfirmedAt:   &now,
	}
	if err := s.paymentRepo.Create(ctx, txn); err != nil {
		s.logger.Error("failed to record payment transaction",
			logger.String("appointment_id", appt.ID),
			logger.String("external_id", externalID),
			logger.Any("error", err),
		)
	}
}
