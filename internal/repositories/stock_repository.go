package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monokpe/james-ecom/internal/models"
	"github.com/monokpe/james-ecom/internal/utils"
)

type StockRepository interface {
	ApplyMovement(ctx context.Context, movement *models.StockMovement) (int64, error)
	ListMovementsByProduct(ctx context.Context, productID int64, page, size int) ([]models.StockMovement, int, error)
}

type stockRepository struct {
	DB *sql.DB
}

func NewStockRepo(db *sql.DB) StockRepository {
	return &stockRepository{DB: db}
}

// ApplyMovement records a stock movement and adjusts the product's stock
// level in a single transaction. The product row is locked first so two
// concurrent subtractions cannot both validate against a stale level. On
// insufficient stock nothing is persisted and ErrInsufficientStock is
// returned.
func (r *stockRepository) ApplyMovement(ctx context.Context, movement *models.StockMovement) (int64, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	newLevel, err := applyMovementTx(dbCtx, tx, movement)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit stock movement: %w", err)
	}

	return newLevel, nil
}

// applyMovementTx does the lock-validate-write sequence inside an existing
// transaction. Shared with order creation, which decrements stock for every
// item within the order's own transaction.
func applyMovementTx(ctx context.Context, tx *sql.Tx, movement *models.StockMovement) (int64, error) {

	var currentLevel int64

	lockQuery := `SELECT stock_level FROM products WHERE id = $1 FOR UPDATE`

	err := tx.QueryRowContext(ctx, lockQuery, movement.ProductID).Scan(&currentLevel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}

		return 0, fmt.Errorf("failed to lock product row: %w", err)
	}

	newLevel := currentLevel

	switch movement.MovementType {
	case models.MovementAddition:
		newLevel = currentLevel + movement.Quantity
	case models.MovementSubtraction:
		if movement.Quantity > currentLevel {
			return 0, ErrInsufficientStock
		}

		newLevel = currentLevel - movement.Quantity
	default:
		return 0, fmt.Errorf("unknown movement type: %s", movement.MovementType)
	}

	insertQuery := `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err = tx.QueryRowContext(ctx, insertQuery, movement.ID, movement.ProductID, movement.MovementType, movement.Quantity, movement.UserID).Scan(&movement.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stock movement: %w", err)
	}

	updateQuery := `UPDATE products SET stock_level = $1, updated_at = NOW() WHERE id = $2`

	if _, err := tx.ExecContext(ctx, updateQuery, newLevel, movement.ProductID); err != nil {
		return 0, fmt.Errorf("failed to update stock level: %w", err)
	}

	return newLevel, nil
}

func (r *stockRepository) ListMovementsByProduct(ctx context.Context, productID int64, page, size int) ([]models.StockMovement, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM stock_movements WHERE product_id = $1`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock movements: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, product_id, movement_type, quantity, user_id, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, productID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stock movements: %w", err)
	}

	defer rows.Close()

	var movements []models.StockMovement

	for rows.Next() {

		var m models.StockMovement

		if err := rows.Scan(&m.ID, &m.ProductID, &m.MovementType, &m.Quantity, &m.UserID, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan stock movement: %w", err)
		}

		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}
