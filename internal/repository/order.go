package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/devpbeat/reservio/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	rnd      *rand.Rand
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

const orderColumns = `id, tenant_id, raffle_id, customer_id, qty, total_amount, currency, status,
		payment_proof_id, created_at, updated_at, paid_at, expires_at`

// lockedRaffle is the slice of the raffle row a reservation needs while
// holding the exclusive lock.
type lockedRaffle struct {
	ticketPrice decimal.Decimal
	currency    string
	minNumber   int
	maxNumber   int
}

// ReserveSpecific reserves the requested ticket numbers. Lock order is fixed:
// raffle row first, then ticket rows sorted by number, so concurrent
// reservations against overlapping sets serialize instead of deadlocking.
func (r *OrderRepository) ReserveSpecific(ctx context.Context, input domain.ReserveInput, numbers []int) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	raffle, err := lockRaffle(ctx, tx, input.TenantID, input.RaffleID)
	if err != nil {
		return nil, err
	}

	var outOfRange []int
	for _, n := range numbers {
		if n < raffle.minNumber || n > raffle.maxNumber {
			outOfRange = append(outOfRange, n)
		}
	}
	if len(outOfRange) > 0 {
		return nil, fmt.Errorf("%w: invalid numbers: %s", domain.ErrInvalidTicketNumbers, joinInts(outOfRange))
	}

	if err = sweepExpired(ctx, tx, input.RaffleID, now); err != nil {
		return nil, err
	}

	lockQuery := `SELECT id, number, status FROM ticket_numbers
				  WHERE raffle_id = $1 AND number = ANY($2)
				  ORDER BY number
				  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, lockQuery, input.RaffleID, pq.Array(toInt64(numbers)))
	if err != nil {
		return nil, fmt.Errorf("lock tickets: %w", err)
	}

	found := make(map[int]lockedTicket, len(numbers))
	var unavailable []int
	for rows.Next() {
		var t lockedTicket
		var status domain.TicketStatus
		if err = rows.Scan(&t.id, &t.number, &status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		found[t.number] = t
		if status != domain.TicketStatusAvailable {
			unavailable = append(unavailable, t.number)
		}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("lock tickets: %w", err)
	}

	if len(found) != len(numbers) {
		var missing []int
		for _, n := range numbers {
			if _, ok := found[n]; !ok {
				missing = append(missing, n)
			}
		}
		return nil, fmt.Errorf("%w: tickets not found: %s", domain.ErrInvalidTicketNumbers, joinInts(missing))
	}
	if len(unavailable) > 0 {
		return nil, fmt.Errorf("%w: tickets not available: %s", domain.ErrInvalidTicketNumbers, joinInts(unavailable))
	}

	selected := make([]lockedTicket, 0, len(numbers))
	for _, t := range found {
		selected = append(selected, t)
	}

	return r.reserveLocked(ctx, tx, input, raffle, selected, now)
}

// ReserveRandom reserves qty uniformly sampled tickets. The FOR UPDATE cursor
// locks every available ticket of the raffle; the reservoir keeps only qty of
// them in memory.
func (r *OrderRepository) ReserveRandom(ctx context.Context, input domain.ReserveInput, qty int) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	raffle, err := lockRaffle(ctx, tx, input.TenantID, input.RaffleID)
	if err != nil {
		return nil, err
	}

	if err = sweepExpired(ctx, tx, input.RaffleID, now); err != nil {
		return nil, err
	}

	query := `SELECT id, number FROM ticket_numbers
			  WHERE raffle_id = $1 AND status = 'AVAILABLE'
			  ORDER BY number
			  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, input.RaffleID)
	if err != nil {
		return nil, fmt.Errorf("lock available tickets: %w", err)
	}

	res := newReservoir(qty, r.rnd)
	for rows.Next() {
		var t lockedTicket
		if err = rows.Scan(&t.id, &t.number); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res.offer(t)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("lock available tickets: %w", err)
	}

	if res.seen < qty {
		return nil, fmt.Errorf("%w: only %d ticket(s) available, you requested %d",
			domain.ErrInvalidTicketNumbers, res.seen, qty)
	}

	return r.reserveLocked(ctx, tx, input, raffle, res.sample(), now)
}

// reserveLocked creates the order and attaches the already locked tickets,
// then commits.
func (r *OrderRepository) reserveLocked(
	ctx context.Context,
	tx *sql.Tx,
	input domain.ReserveInput,
	raffle *lockedRaffle,
	tickets []lockedTicket,
	now time.Time,
) (*domain.Order, error) {
	customerID, err := upsertCustomer(ctx, tx, input.TenantID, input.Customer, now)
	if err != nil {
		return nil, err
	}

	qty := len(tickets)
	expiresAt := now.Add(input.Timeout)

	order := &domain.Order{
		ID:          uuid.New().String(),
		TenantID:    input.TenantID,
		RaffleID:    input.RaffleID,
		CustomerID:  customerID,
		Qty:         qty,
		TotalAmount: raffle.ticketPrice.Mul(decimal.NewFromInt(int64(qty))),
		Currency:    raffle.currency,
		Status:      domain.OrderStatusPendingPayment,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   &expiresAt,
	}

	insertOrder := `INSERT INTO orders (id, tenant_id, raffle_id, customer_id, qty, total_amount,
						currency, status, created_at, updated_at, expires_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9, $10)`
	_, err = tx.ExecContext(
		ctx, insertOrder,
		order.ID, order.TenantID, order.RaffleID, order.CustomerID, order.Qty, order.TotalAmount,
		order.Currency, order.Status, now, expiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	ids := make([]string, 0, qty)
	numbers := make([]int, 0, qty)
	for _, t := range tickets {
		ids = append(ids, t.id)
		numbers = append(numbers, t.number)
	}
	sort.Ints(numbers)
	order.TicketNumbers = numbers

	reserveQuery := `UPDATE ticket_numbers
					 SET status = 'RESERVED', reserved_by_order = $1, reserved_until = $2, updated_at = $3
					 WHERE id = ANY($4)`
	if _, err = tx.ExecContext(ctx, reserveQuery, order.ID, expiresAt, now, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("reserve tickets: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO order_tickets (id, order_id, ticket_id) VALUES `)
	args := make([]any, 0, qty*2+1)
	args = append(args, order.ID)
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, uuid.New().String(), id)
		fmt.Fprintf(&sb, "($%d, $1, $%d)", len(args)-1, len(args))
	}
	if _, err = tx.ExecContext(ctx, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("insert order tickets: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return order, nil
}

func lockRaffle(ctx context.Context, tx *sql.Tx, tenantID, raffleID string) (*lockedRaffle, error) {
	query := `SELECT ticket_price, currency, min_number, max_number FROM raffles
			  WHERE tenant_id = $1 AND id = $2 AND is_active
			  FOR UPDATE`

	var raffle lockedRaffle
	err := tx.QueryRowContext(ctx, query, tenantID, raffleID).Scan(
		&raffle.ticketPrice, &raffle.currency, &raffle.minNumber, &raffle.maxNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("lock raffle: %w", err)
	}

	return &raffle, nil
}

// sweepExpired releases the raffle's timed-out holds before availability is
// judged. This lazy sweep is the source of truth for expiry; the periodic
// scheduler is only an operational extra.
func sweepExpired(ctx context.Context, tx *sql.Tx, raffleID string, now time.Time) error {
	query := `UPDATE ticket_numbers
			  SET status = 'AVAILABLE', reserved_by_order = NULL, reserved_until = NULL, updated_at = $2
			  WHERE raffle_id = $1 AND status = 'RESERVED' AND reserved_until < $2`

	if _, err := tx.ExecContext(ctx, query, raffleID, now); err != nil {
		return fmt.Errorf("sweep expired reservations: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Order, error) {
	query := `SELECT o.id, o.tenant_id, o.raffle_id, o.customer_id, o.qty, o.total_amount, o.currency, o.status,
					 o.payment_proof_id, o.created_at, o.updated_at, o.paid_at, o.expires_at,
					 COALESCE(array_agg(t.number ORDER BY t.number) FILTER (WHERE t.number IS NOT NULL), '{}')
			  FROM orders o
			  LEFT JOIN order_tickets ot ON ot.order_id = o.id
			  LEFT JOIN ticket_numbers t ON t.id = ot.ticket_id
			  WHERE o.tenant_id = $1 AND o.id = $2
			  GROUP BY o.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.Order
	var numbers pq.Int64Array
	err = row.Scan(
		&o.ID, &o.TenantID, &o.RaffleID, &o.CustomerID, &o.Qty, &o.TotalAmount, &o.Currency, &o.Status,
		&o.PaymentProofID, &o.CreatedAt, &o.UpdatedAt, &o.PaidAt, &o.ExpiresAt,
		&numbers,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	o.TicketNumbers = make([]int, len(numbers))
	for i, n := range numbers {
		o.TicketNumbers[i] = int(n)
	}

	return &o, nil
}

func (r *OrderRepository) ListPendingPayment(ctx context.Context, tenantID string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
			  WHERE tenant_id = $1 AND status = 'PENDING_PAYMENT'
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

// Release returns all of the order's reserved tickets to the pool and cancels
// the order. Already cancelled orders are a no-op so that an explicit release
// racing the expiry sweep never errors.
func (r *OrderRepository) Release(ctx context.Context, tenantID, id string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	o, err := lockOrder(ctx, tx, tenantID, id)
	if err != nil {
		return 0, err
	}

	if o.Status == domain.OrderStatusCancelled {
		return 0, nil
	}
	if !o.IsReleasable() {
		return 0, fmt.Errorf("%w: cannot release tickets for an order with status %s", domain.ErrInvalidTransition, o.Status)
	}

	if err = lockRaffleRows(ctx, tx, []string{o.RaffleID}); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	released, err := releaseOrderTickets(ctx, tx, o.ID, now)
	if err != nil {
		return 0, err
	}

	updateQuery := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, o.ID, domain.OrderStatusCancelled, now); err != nil {
		return 0, fmt.Errorf("cancel order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return released, nil
}

// ConfirmPaid marks the order's tickets SOLD and the order PAID. SOLD tickets
// keep reserved_by_order as the historical buyer link; only the hold deadline
// is cleared.
func (r *OrderRepository) ConfirmPaid(ctx context.Context, tenantID, id string, paymentProofID *string) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	o, err := lockOrder(ctx, tx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if o.Status != domain.OrderStatusPendingPayment {
		return nil, fmt.Errorf("%w: cannot confirm an order with status %s", domain.ErrInvalidTransition, o.Status)
	}

	if err = lockRaffleRows(ctx, tx, []string{o.RaffleID}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	sellQuery := `UPDATE ticket_numbers
				  SET status = 'SOLD', reserved_until = NULL, updated_at = $2
				  WHERE reserved_by_order = $1`
	res, err := tx.ExecContext(ctx, sellQuery, o.ID, now)
	if err != nil {
		return nil, fmt.Errorf("mark tickets sold: %w", err)
	}
	sold, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("tickets sold rows affected: %w", err)
	}

	if sold == 0 {
		// The lazy sweep may have released the hold while the order stayed
		// PENDING_PAYMENT; those tickets are no longer this order's to sell.
		return nil, domain.ErrNoReservedTickets
	}

	o.Status = domain.OrderStatusPaid
	o.PaidAt = &now
	o.UpdatedAt = now
	if paymentProofID != nil {
		o.PaymentProofID = paymentProofID
	}

	updateQuery := `UPDATE orders
					SET status = $2, paid_at = $3, payment_proof_id = COALESCE($4, payment_proof_id), updated_at = $3
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, o.ID, o.Status, now, paymentProofID); err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	if o.TicketNumbers, err = orderTicketNumbers(ctx, tx, o.ID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return o, nil
}

// MarkExpired transitions an overdue PENDING_PAYMENT order to EXPIRED and
// releases its tickets. Anything else is returned unchanged, so callers can
// probe without racing the sweep.
func (r *OrderRepository) MarkExpired(ctx context.Context, tenantID, id string) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	o, err := lockOrder(ctx, tx, tenantID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !o.IsExpired(now) {
		return o, nil
	}

	if err = lockRaffleRows(ctx, tx, []string{o.RaffleID}); err != nil {
		return nil, err
	}

	if _, err = releaseOrderTickets(ctx, tx, o.ID, now); err != nil {
		return nil, err
	}

	o.Status = domain.OrderStatusExpired
	o.UpdatedAt = now

	updateQuery := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, o.ID, o.Status, now); err != nil {
		return nil, fmt.Errorf("expire order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return o, nil
}

// ExpireOverdue expires every overdue PENDING_PAYMENT order and releases the
// tickets they held. Used by the periodic sweep.
func (r *OrderRepository) ExpireOverdue(ctx context.Context) ([]*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	selectQuery := `SELECT id, raffle_id FROM orders
					WHERE status = $1 AND expires_at < $2
					FOR UPDATE`

	rows, err := tx.QueryContext(ctx, selectQuery, domain.OrderStatusPendingPayment, now)
	if err != nil {
		return nil, fmt.Errorf("select overdue orders: %w", err)
	}

	var ids []string
	raffleSet := make(map[string]struct{})
	for rows.Next() {
		var id, raffleID string
		if err = rows.Scan(&id, &raffleID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan overdue order: %w", err)
		}
		ids = append(ids, id)
		raffleSet[raffleID] = struct{}{}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("select overdue orders: %w", err)
	}

	if len(ids) == 0 {
		return nil, tx.Commit()
	}

	raffleIDs := make([]string, 0, len(raffleSet))
	for id := range raffleSet {
		raffleIDs = append(raffleIDs, id)
	}
	if err = lockRaffleRows(ctx, tx, raffleIDs); err != nil {
		return nil, err
	}

	releaseQuery := `UPDATE ticket_numbers
					 SET status = 'AVAILABLE', reserved_by_order = NULL, reserved_until = NULL, updated_at = $2
					 WHERE reserved_by_order = ANY($1)`
	if _, err = tx.ExecContext(ctx, releaseQuery, pq.Array(ids), now); err != nil {
		return nil, fmt.Errorf("release expired tickets: %w", err)
	}

	expireQuery := `UPDATE orders
					SET status = $1, updated_at = $2
					WHERE id = ANY($3)
					RETURNING ` + orderColumns

	rows, err = tx.QueryContext(ctx, expireQuery, domain.OrderStatusExpired, now, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("expire overdue orders: %w", err)
	}

	var expired []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, err
		}
		expired = append(expired, o)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("expire overdue orders: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return expired, nil
}

func lockOrder(ctx context.Context, tx *sql.Tx, tenantID, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	return scanOrder(tx.QueryRowContext(ctx, query, tenantID, id).Scan)
}

// lockRaffleRows locks the raffle rows in id order. Every path that mutates
// ticket rows takes the owning raffle's lock first, so release/confirm/expiry
// serialize behind the same parent as reservations.
func lockRaffleRows(ctx context.Context, tx *sql.Tx, raffleIDs []string) error {
	sort.Strings(raffleIDs)

	query := `SELECT id FROM raffles WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, pq.Array(raffleIDs))
	if err != nil {
		return fmt.Errorf("lock raffles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return fmt.Errorf("scan raffle id: %w", err)
		}
	}
	return rows.Err()
}

func releaseOrderTickets(ctx context.Context, tx *sql.Tx, orderID string, now time.Time) (int, error) {
	query := `UPDATE ticket_numbers
			  SET status = 'AVAILABLE', reserved_by_order = NULL, reserved_until = NULL, updated_at = $2
			  WHERE reserved_by_order = $1`

	res, err := tx.ExecContext(ctx, query, orderID, now)
	if err != nil {
		return 0, fmt.Errorf("release tickets: %w", err)
	}
	released, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("released rows affected: %w", err)
	}

	return int(released), nil
}

func orderTicketNumbers(ctx context.Context, tx *sql.Tx, orderID string) ([]int, error) {
	query := `SELECT t.number FROM ticket_numbers t
			  JOIN order_tickets ot ON ot.ticket_id = t.id
			  WHERE ot.order_id = $1
			  ORDER BY t.number`

	rows, err := tx.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order ticket numbers: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err = rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan ticket number: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

func scanOrder(scan func(...any) error) (*domain.Order, error) {
	var o domain.Order
	err := scan(
		&o.ID, &o.TenantID, &o.RaffleID, &o.CustomerID, &o.Qty, &o.TotalAmount, &o.Currency, &o.Status,
		&o.PaymentProofID, &o.CreatedAt, &o.UpdatedAt, &o.PaidAt, &o.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return &o, nil
}

func toInt64(in []int) []int64 {
	out := make([]int64, len(in))
	for i, n := range in {
		out[i] = int64(n)
	}
	return out
}

func joinInts(in []int) string {
	sort.Ints(in)
	parts := make([]string, len(in))
	for i, n := range in {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
