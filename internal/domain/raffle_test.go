package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRaffle_TotalTickets(t *testing.T) {
	assert.Equal(t, 100, (&Raffle{MinNumber: 1, MaxNumber: 100}).TotalTickets())
	assert.Equal(t, 1, (&Raffle{MinNumber: 7, MaxNumber: 7}).TotalTickets())
	assert.Equal(t, 1000, (&Raffle{MinNumber: 0, MaxNumber: 999}).TotalTickets())
}

func TestRaffle_InRange(t *testing.T) {
	r := &Raffle{MinNumber: 10, MaxNumber: 20}

	assert.True(t, r.InRange(10))
	assert.True(t, r.InRange(20))
	assert.False(t, r.InRange(9))
	assert.False(t, r.InRange(21))
}

func TestTicketNumber_ReservationExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	assert.True(t, (&TicketNumber{Status: TicketStatusReserved, ReservedUntil: &past}).ReservationExpired(now))
	assert.False(t, (&TicketNumber{Status: TicketStatusReserved, ReservedUntil: &future}).ReservationExpired(now))
	assert.False(t, (&TicketNumber{Status: TicketStatusSold, ReservedUntil: &past}).ReservationExpired(now))
	assert.False(t, (&TicketNumber{Status: TicketStatusAvailable}).ReservationExpired(now))
}
