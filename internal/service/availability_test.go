package service

import (
	"context"
	"testing"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:   "t1",
		Slug: "barbershop",
		Settings: domain.TenantSettings{
			BusinessHoursStart:  9,
			BusinessHoursEnd:    12,
			SlotIntervalMinutes: 30,
		},
	}
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAvailabilityService_AvailableSlots_FreeDay(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(nil, nil)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 0)

	require.NoError(t, err)
	want := []time.Time{
		date.Add(9 * time.Hour),
		date.Add(9*time.Hour + 30*time.Minute),
		date.Add(10 * time.Hour),
		date.Add(10*time.Hour + 30*time.Minute),
		date.Add(11 * time.Hour),
	}
	assert.Equal(t, want, slots)
}

func TestAvailabilityService_AvailableSlots_FiltersConflicts(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := []*domain.Appointment{
		{ScheduledAt: date.Add(10 * time.Hour), DurationMinutes: 60, Status: domain.AppointmentStatusConfirmed},
	}

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(existing, nil)

	slots, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 0)

	require.NoError(t, err)
	want := []time.Time{
		date.Add(9 * time.Hour),
		date.Add(11 * time.Hour),
	}
	assert.Equal(t, want, slots)
}

func TestAvailabilityService_AvailableSlots_BufferExpandsCandidateWindow(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := []*domain.Appointment{
		{ScheduledAt: date.Add(10 * time.Hour), DurationMinutes: 60, Status: domain.AppointmentStatusConfirmed},
	}

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60, BufferTimeMinutes: 30}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(existing, nil)

	slots, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 0)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityService_AvailableSlots_FiltersPast(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC))

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(nil, nil)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	slots, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 0)

	require.NoError(t, err)
	want := []time.Time{
		date.Add(10*time.Hour + 30*time.Minute),
		date.Add(11 * time.Hour),
	}
	assert.Equal(t, want, slots)
}

func TestAvailabilityService_AvailableSlots_DailyLimitReached(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := []*domain.Appointment{
		{ScheduledAt: date.Add(9 * time.Hour), DurationMinutes: 30},
		{ScheduledAt: date.Add(10 * time.Hour), DurationMinutes: 30},
	}

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 30, MaxBookingsPerDay: 2}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(existing, nil)

	slots, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 0)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityService_AvailableSlots_DurationOverride(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(nil, nil)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	// A 3 hour session only fits at the opening slot.
	slots, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 180)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{date.Add(9 * time.Hour)}, slots)
}

func TestAvailabilityService_AvailableSlots_InactiveService(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: false}, nil)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.AvailableSlots(context.Background(), testTenant(), "s1", date, 0)

	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestAvailabilityService_NextAvailableSlot_SkipsToNextDay(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	// After business hours: every slot today is in the past.
	svc.now = fixedNow(time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC))

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(nil, nil)

	slot, err := svc.NextAvailableSlot(context.Background(), testTenant(), "s1", nil)

	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), *slot)
}

func TestAvailabilityService_Calendar(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))
	svc.now = fixedNow(time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC))

	serviceRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").
		Return(&domain.Service{ID: "s1", IsActive: true, DurationMinutes: 60}, nil)
	apptRepo.EXPECT().ListActiveBetween(mock.Anything, "t1", "s1", mock.Anything, mock.Anything).
		Return(nil, nil)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	days, err := svc.Calendar(context.Background(), testTenant(), "s1", start, end)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-10", days[0].Date)
	assert.Equal(t, 5, days[0].AvailableCount)
	assert.Equal(t, 0, days[0].BookedCount)
	assert.Equal(t, "2026-03-11", days[1].Date)
}

func TestAvailabilityService_Calendar_InvalidRange(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	apptRepo := mocks.NewMockAppointmentRepo(t)

	svc := NewAvailabilityService(serviceRepo, apptRepo, newTestLogger(t))

	start := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Calendar(context.Background(), testTenant(), "s1", start, end)

	assert.ErrorIs(t, err, domain.ErrInvalidTimeWindow)
}
