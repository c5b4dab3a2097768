package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTenantSettings_Normalized_Defaults(t *testing.T) {
	s := TenantSettings{}.Normalized()

	assert.Equal(t, DefaultBusinessHoursStart, s.BusinessHoursStart)
	assert.Equal(t, DefaultBusinessHoursEnd, s.BusinessHoursEnd)
	assert.Equal(t, DefaultSlotIntervalMinutes, s.SlotIntervalMinutes)
	assert.Equal(t, DefaultMinTicketsPerOrder, s.MinTicketsPerOrder)
	assert.Equal(t, DefaultMaxTicketsPerOrder, s.MaxTicketsPerOrder)
	assert.Equal(t, DefaultReservationTimeoutMinutes, s.ReservationTimeoutMinutes)
}

func TestTenantSettings_Normalized_KeepsExplicitValues(t *testing.T) {
	s := TenantSettings{
		BusinessHoursStart:        8,
		BusinessHoursEnd:          20,
		SlotIntervalMinutes:       15,
		MaxTicketsPerOrder:        10,
		ReservationTimeoutMinutes: 30,
	}.Normalized()

	assert.Equal(t, 8, s.BusinessHoursStart)
	assert.Equal(t, 20, s.BusinessHoursEnd)
	assert.Equal(t, 15, s.SlotIntervalMinutes)
	assert.Equal(t, DefaultMinTicketsPerOrder, s.MinTicketsPerOrder)
	assert.Equal(t, 10, s.MaxTicketsPerOrder)
	assert.Equal(t, 30, s.ReservationTimeoutMinutes)
}

func TestTenantSettings_ReservationTimeout(t *testing.T) {
	assert.Equal(t, 15*time.Minute, TenantSettings{}.ReservationTimeout())
	assert.Equal(t, 45*time.Minute, TenantSettings{ReservationTimeoutMinutes: 45}.ReservationTimeout())
}
