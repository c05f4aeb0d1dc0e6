package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/models"
	"github.com/monokpe/james-ecom/internal/utils"
)

type CartRepository interface {
	AddItem(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, quantity int64) (*models.CartItem, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// AddItem upserts on (user_id, product_id): adding a product already in
// the cart bumps its quantity.
func (r *cartRepository) AddItem(ctx context.Context, item *models.CartItem) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, quantity, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, item.UserID, item.ProductID, item.Quantity).Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, quantity int64) (*models.CartItem, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.CartItem{ID: itemID, UserID: userID, Quantity: quantity}

	query := `
		UPDATE cart_items SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING product_id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, quantity, itemID, userID).Scan(&item.ProductID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ci.id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		       p.name, p.price, p.stock_level
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	defer rows.Close()

	var items []models.CartItem

	for rows.Next() {

		item := models.CartItem{UserID: userID, Product: &models.Product{}}

		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&item.Product.Name, &item.Product.Price, &item.Product.StockLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}

		item.Product.ID = item.ProductID

		items = append(items, item)
	}

	return items, rows.Err()
}
