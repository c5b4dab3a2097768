package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, txn *domain.PaymentTransaction) error {
	if err := txn.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO payment_transactions (id, tenant_id, provider, external_id, amount, currency,
				status, order_id, appointment_id, notes, created_at, confirmed_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		txn.ID, txn.TenantID, txn.Provider, txn.ExternalID, txn.Amount, txn.Currency,
		txn.Status, txn.OrderID, txn.AppointmentID, txn.Notes, now, txn.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}

	txn.CreatedAt = now

	return nil
}
