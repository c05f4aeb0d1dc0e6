package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/monokpe/james-ecom/internal/models"
	"github.com/monokpe/james-ecom/internal/utils"
)

const pqUniqueViolation = "23505"

type PaymentRepository interface {
	CreatePaymentForPendingOrder(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
}

type paymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{DB: db}
}

// CreatePaymentForPendingOrder inserts the payment row and flips the order
// from PENDING to PROCESSING in one transaction. The conditional UPDATE is
// the guard against double-processing: if the order is no longer PENDING
// (a racing confirmation won, or the order was cancelled) nothing is
// persisted and ErrOrderNotPending is returned. The unique constraint on
// payments.order_id backs this up at the schema level.
func (r *paymentRepository) CreatePaymentForPendingOrder(ctx context.Context, payment *models.Payment) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	statusQuery := `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := tx.ExecContext(dbCtx, statusQuery, models.OrderStatusProcessing, payment.OrderID, models.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if updated == 0 {
		return ErrOrderNotPending
	}

	insertQuery := `
		INSERT INTO payments (id, order_id, amount, payment_gateway, success, client_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err = tx.QueryRowContext(dbCtx, insertQuery, payment.ID, payment.OrderID, payment.Amount, payment.Gateway, payment.Success, payment.ClientToken).Scan(&payment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicatePayment
		}

		return fmt.Errorf("failed to insert payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment := &models.Payment{ID: id}

	query := `
		SELECT order_id, amount, payment_gateway, success, client_token, created_at
		FROM payments
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&payment.OrderID, &payment.Amount, &payment.Gateway, &payment.Success, &payment.ClientToken, &payment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment := &models.Payment{OrderID: orderID}

	query := `
		SELECT id, amount, payment_gateway, success, client_token, created_at
		FROM payments
		WHERE order_id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(&payment.ID, &payment.Amount, &payment.Gateway, &payment.Success, &payment.ClientToken, &payment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get payment by order: %w", err)
	}

	return payment, nil
}
