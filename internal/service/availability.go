package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// nextSlotSearchDays bounds the forward scan of NextAvailableSlot.
const nextSlotSearchDays = 30

type AvailabilityService struct {
	serviceRepo ports.ServiceRepo
	apptRepo    ports.AppointmentRepo
	logger      logger.Logger
	now         func() time.Time
}

func NewAvailabilityService(
	serviceRepo ports.ServiceRepo,
	apptRepo ports.AppointmentRepo,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		serviceRepo: serviceRepo,
		apptRepo:    apptRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// AvailableSlots returns the bookable start times of one service on one day,
// inside the tenant's business hours, on the tenant's slot grid. Slots in the
// past, slots conflicting with an active appointment and slots beyond the
// service's daily limit are filtered out.
func (s *AvailabilityService) AvailableSlots(
	ctx context.Context,
	tenant *domain.Tenant,
	serviceID string,
	date time.Time,
	durationOverrideMinutes int,
) ([]time.Time, error) {
	svc, err := s.serviceRepo.GetByID(ctx, tenant.ID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !svc.IsActive {
		return nil, domain.ErrServiceNotFound
	}

	duration := svc.Duration()
	if durationOverrideMinutes > 0 {
		duration = time.Duration(durationOverrideMinutes) * time.Minute
	}

	settings := tenant.Settings.Normalized()
	interval := time.Duration(settings.SlotIntervalMinutes) * time.Minute

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	windowStart := dayStart.Add(time.Duration(settings.BusinessHoursStart) * time.Hour)
	windowEnd := dayStart.Add(time.Duration(settings.BusinessHoursEnd) * time.Hour)

	// Fetch one extra day back so an appointment spilling over midnight still
	// participates in the conflict check.
	existing, err := s.apptRepo.ListActiveBetween(ctx, tenant.ID, serviceID, dayStart.AddDate(0, 0, -1), dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	if svc.MaxBookingsPerDay > 0 {
		booked := 0
		for _, a := range existing {
			if !a.ScheduledAt.Before(dayStart) {
				booked++
			}
		}
		if booked >= svc.MaxBookingsPerDay {
			return []time.Time{}, nil
		}
	}

	now := s.now()
	slots := make([]time.Time, 0)
	for cand := windowStart; !cand.Add(duration).After(windowEnd); cand = cand.Add(interval) {
		if !cand.After(now) {
			continue
		}
		if slotConflicts(existing, cand, duration, svc.Buffer()) {
			continue
		}
		slots = append(slots, cand)
	}

	return slots, nil
}

// NextAvailableSlot scans forward day by day and returns the first bookable
// slot, or nil when none exists within the search horizon.
func (s *AvailabilityService) NextAvailableSlot(
	ctx context.Context,
	tenant *domain.Tenant,
	serviceID string,
	from *time.Time,
) (*time.Time, error) {
	start := s.now()
	if from != nil && from.After(start) {
		start = *from
	}

	for offset := 0; offset < nextSlotSearchDays; offset++ {
		date := start.AddDate(0, 0, offset)
		slots, err := s.AvailableSlots(ctx, tenant, serviceID, date, 0)
		if err != nil {
			return nil, err
		}
		for _, slot := range slots {
			if !slot.Before(start) {
				return &slot, nil
			}
		}
	}

	s.logger.Info("no slot found within search horizon",
		logger.String("tenant_id", tenant.ID),
		logger.String("service_id", serviceID),
		logger.Int("days", nextSlotSearchDays),
	)

	return nil, nil
}

// Calendar returns the per-day availability of a service over [start, end],
// both dates inclusive.
func (s *AvailabilityService) Calendar(
	ctx context.Context,
	tenant *domain.Tenant,
	serviceID string,
	start, end time.Time,
) ([]domain.DayAvailability, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: end date is before start date", domain.ErrInvalidTimeWindow)
	}

	var days []domain.DayAvailability
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		slots, err := s.AvailableSlots(ctx, tenant, serviceID, day, 0)
		if err != nil {
			return nil, err
		}

		booked, err := s.apptRepo.ListActiveBetween(ctx, tenant.ID, serviceID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, fmt.Errorf("list appointments: %w", err)
		}

		days = append(days, domain.DayAvailability{
			Date:           day.Format("2006-01-02"),
			AvailableCount: len(slots),
			BookedCount:    len(booked),
			Slots:          slots,
		})
	}

	return days, nil
}

func slotConflicts(existing []*domain.Appointment, start time.Time, duration, buffer time.Duration) bool {
	for _, a := range existing {
		if a.ConflictsWith(start, duration, buffer) {
			return true
		}
	}
	return false
}
