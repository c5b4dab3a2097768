package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const ticketInsertBatchSize = 1000

type RaffleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRaffleRepo(db *dbpg.DB) *RaffleRepository {
	return &RaffleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const raffleColumns = `id, tenant_id, title, description, ticket_price, currency, is_active,
		min_number, max_number, draw_date, created_at, updated_at`

func (r *RaffleRepository) Create(ctx context.Context, raffle *domain.Raffle) error {
	query := `INSERT INTO raffles (id, tenant_id, title, description, ticket_price, currency,
				min_number, max_number, draw_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		raffle.ID, raffle.TenantID, raffle.Title, raffle.Description, raffle.TicketPrice, raffle.Currency,
		raffle.MinNumber, raffle.MaxNumber, raffle.DrawDate, now,
	)
	if err != nil {
		return fmt.Errorf("insert raffle: %w", err)
	}

	raffle.IsActive = true
	raffle.CreatedAt = now
	raffle.UpdatedAt = now

	return nil
}

func (r *RaffleRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles WHERE tenant_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get raffle: %w", err)
	}

	return scanRaffle(row.Scan)
}

func (r *RaffleRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]*domain.Raffle, error) {
	query := `SELECT ` + raffleColumns + ` FROM raffles
			  WHERE tenant_id = $1 AND ($2 = FALSE OR is_active)
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list raffles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Raffle
	for rows.Next() {
		raffle, err := scanRaffle(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, raffle)
	}

	return res, rows.Err()
}

// GenerateTickets creates one AVAILABLE ticket per number in the raffle's
// range, in batches. Existing tickets are only replaced when force is set.
func (r *RaffleRepository) GenerateTickets(ctx context.Context, tenantID, raffleID string, force bool) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var minNumber, maxNumber int
	lockQuery := `SELECT min_number, max_number FROM raffles WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, tenantID, raffleID).Scan(&minNumber, &maxNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrRaffleNotFound
		}
		return 0, fmt.Errorf("lock raffle: %w", err)
	}

	var existing int
	countQuery := `SELECT COUNT(*) FROM ticket_numbers WHERE raffle_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, raffleID).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	if existing > 0 {
		if !force {
			return 0, fmt.Errorf("%w: %d tickets exist, use force to regenerate", domain.ErrTicketsExist, existing)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM ticket_numbers WHERE raffle_id = $1`, raffleID); err != nil {
			return 0, fmt.Errorf("delete tickets: %w", err)
		}
	}

	total := 0
	for start := minNumber; start <= maxNumber; start += ticketInsertBatchSize {
		end := start + ticketInsertBatchSize - 1
		if end > maxNumber {
			end = maxNumber
		}
		if err = insertTicketBatch(ctx, tx, raffleID, start, end); err != nil {
			return 0, err
		}
		total += end - start + 1
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return total, nil
}

func insertTicketBatch(ctx context.Context, tx *sql.Tx, raffleID string, from, to int) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO ticket_numbers (id, raffle_id, number) VALUES `)

	args := make([]any, 0, (to-from+1)*2+1)
	args = append(args, raffleID)
	for n := from; n <= to; n++ {
		if n > from {
			sb.WriteString(", ")
		}
		args = append(args, uuid.New().String(), n)
		fmt.Fprintf(&sb, "($%d, $1, $%d)", len(args)-1, len(args))
	}

	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert ticket batch [%d,%d]: %w", from, to, err)
	}
	return nil
}

func (r *RaffleRepository) Availability(ctx context.Context, tenantID, raffleID string) (*domain.RaffleAvailability, error) {
	query := `SELECT
				COUNT(t.id),
				COUNT(t.id) FILTER (WHERE t.status = 'AVAILABLE'),
				COUNT(t.id) FILTER (WHERE t.status = 'RESERVED'),
				COUNT(t.id) FILTER (WHERE t.status = 'SOLD')
			  FROM raffles r
			  LEFT JOIN ticket_numbers t ON t.raffle_id = r.id
			  WHERE r.tenant_id = $1 AND r.id = $2
			  GROUP BY r.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, raffleID)
	if err != nil {
		return nil, fmt.Errorf("raffle availability: %w", err)
	}

	var a domain.RaffleAvailability
	if err = row.Scan(&a.Total, &a.Available, &a.Reserved, &a.Sold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("scan availability: %w", err)
	}

	return &a, nil
}

func (r *RaffleRepository) ListTickets(ctx context.Context, tenantID, raffleID string, status domain.TicketStatus) ([]*domain.TicketNumber, error) {
	query := `SELECT t.id, t.raffle_id, t.number, t.status, t.reserved_by_order, t.reserved_until,
					 t.created_at, t.updated_at
			  FROM ticket_numbers t
			  JOIN raffles r ON r.id = t.raffle_id
			  WHERE r.tenant_id = $1 AND t.raffle_id = $2 AND ($3 = '' OR t.status = $3)
			  ORDER BY t.number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID, raffleID, string(status))
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketNumber
	for rows.Next() {
		var t domain.TicketNumber
		if err = rows.Scan(
			&t.ID, &t.RaffleID, &t.Number, &t.Status, &t.ReservedByOrder, &t.ReservedUntil,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func scanRaffle(scan func(...any) error) (*domain.Raffle, error) {
	var raffle domain.Raffle
	err := scan(
		&raffle.ID, &raffle.TenantID, &raffle.Title, &raffle.Description, &raffle.TicketPrice,
		&raffle.Currency, &raffle.IsActive, &raffle.MinNumber, &raffle.MaxNumber, &raffle.DrawDate,
		&raffle.CreatedAt, &raffle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("scan raffle: %w", err)
	}
	return &raffle, nil
}
