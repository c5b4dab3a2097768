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

func TestCatalogService_Create_Success(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(serviceRepo, newTestLogger(t))

	serviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Create(context.Background(), "t1", domain.CreateServiceInput{
		Name:            "  Haircut ",
		DurationMinutes: 30,
		Price:           decimal.RequireFromString("50000"),
		Currency:        "PYG",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "t1", created.TenantID)
	assert.Equal(t, "Haircut", created.Name)
	assert.Equal(t, "PYG", created.Currency)
	assert.True(t, created.IsActive)
}

func TestCatalogService_Create_DefaultsCurrency(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(serviceRepo, newTestLogger(t))

	serviceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Create(context.Background(), "t1", domain.CreateServiceInput{
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.Equal(t, "USD", created.Currency)
}

func TestCatalogService_Create_Validation(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	svc := NewCatalogService(serviceRepo, newTestLogger(t))

	tests := []struct {
		name  string
		input domain.CreateServiceInput
	}{
		{"empty name", domain.CreateServiceInput{DurationMinutes: 30, Price: decimal.NewFromInt(10)}},
		{"duration too short", domain.CreateServiceInput{Name: "X", DurationMinutes: 4, Price: decimal.NewFromInt(10)}},
		{"negative price", domain.CreateServiceInput{Name: "X", DurationMinutes: 30, Price: decimal.NewFromInt(-1)}},
		{"negative buffer", domain.CreateServiceInput{Name: "X", DurationMinutes: 30, Price: decimal.NewFromInt(10), BufferTimeMinutes: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "t1", tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
