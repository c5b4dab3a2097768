package service

import (
	"context"
	"testing"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/devpbeat/reservio/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRaffleService_Create_Success(t *testing.T) {
	raffleRepo := mocks.NewMockRaffleRepo(t)
	svc := NewRaffleService(raffleRepo, newTestLogger(t))

	raffleRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	raffle, err := svc.Create(context.Background(), "t1", domain.CreateRaffleInput{
		Title:       "Grand Prize",
		TicketPrice: decimal.RequireFromString("10000"),
		MinNumber:   1,
		MaxNumber:   500,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, raffle.ID)
	assert.Equal(t, "t1", raffle.TenantID)
	assert.Equal(t, 500, raffle.TotalTickets())
	assert.Equal(t, "USD", raffle.Currency)
	assert.True(t, raffle.IsActive)
}

func TestRaffleService_Create_Validation(t *testing.T) {
	raffleRepo := mocks.NewMockRaffleRepo(t)
	svc := NewRaffleService(raffleRepo, newTestLogger(t))

	tests := []struct {
		name  string
		input domain.CreateRaffleInput
	}{
		{"empty title", domain.CreateRaffleInput{TicketPrice: decimal.NewFromInt(10), MinNumber: 1, MaxNumber: 10}},
		{"zero price", domain.CreateRaffleInput{Title: "R", TicketPrice: decimal.Zero, MinNumber: 1, MaxNumber: 10}},
		{"negative price", domain.CreateRaffleInput{Title: "R", TicketPrice: decimal.NewFromInt(-5), MinNumber: 1, MaxNumber: 10}},
		{"negative min", domain.CreateRaffleInput{Title: "R", TicketPrice: decimal.NewFromInt(10), MinNumber: -1, MaxNumber: 10}},
		{"zero min", domain.CreateRaffleInput{Title: "R", TicketPrice: decimal.NewFromInt(10), MinNumber: 0, MaxNumber: 10}},
		{"max below min", domain.CreateRaffleInput{Title: "R", TicketPrice: decimal.NewFromInt(10), MinNumber: 10, MaxNumber: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "t1", tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRaffleService_GenerateTickets(t *testing.T) {
	raffleRepo := mocks.NewMockRaffleRepo(t)
	svc := NewRaffleService(raffleRepo, newTestLogger(t))

	raffleRepo.EXPECT().GenerateTickets(mock.Anything, "t1", "r1", false).Return(500, nil)

	generated, err := svc.GenerateTickets(context.Background(), "t1", "r1", false)

	require.NoError(t, err)
	assert.Equal(t, 500, generated)
}

func TestRaffleService_GenerateTickets_AlreadyExist(t *testing.T) {
	raffleRepo := mocks.NewMockRaffleRepo(t)
	svc := NewRaffleService(raffleRepo, newTestLogger(t))

	raffleRepo.EXPECT().GenerateTickets(mock.Anything, "t1", "r1", false).
		Return(0, domain.ErrTicketsExist)

	_, err := svc.GenerateTickets(context.Background(), "t1", "r1", false)

	assert.ErrorIs(t, err, domain.ErrTicketsExist)
}

func TestRaffleService_Availability(t *testing.T) {
	raffleRepo := mocks.NewMockRaffleRepo(t)
	svc := NewRaffleService(raffleRepo, newTestLogger(t))

	raffleRepo.EXPECT().Availability(mock.Anything, "t1", "r1").
		Return(&domain.RaffleAvailability{Total: 500, Available: 480, Reserved: 15, Sold: 5}, nil)

	availability, err := svc.Availability(context.Background(), "t1", "r1")

	require.NoError(t, err)
	assert.Equal(t, 480, availability.Available)
}
