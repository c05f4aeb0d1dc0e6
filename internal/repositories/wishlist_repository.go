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

type WishlistRepository interface {
	AddItem(ctx context.Context, item *models.WishlistItem) error
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
}

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepo(db *sql.DB) WishlistRepository {
	return &wishlistRepository{DB: db}
}

func (r *wishlistRepository) AddItem(ctx context.Context, item *models.WishlistItem) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, item.UserID, item.ProductID).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return fmt.Errorf("product already wishlisted: %w", err)
		}

		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

func (r *wishlistRepository) RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM wishlist_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
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

func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT wi.id, wi.product_id, wi.created_at, p.name, p.price, p.stock_level
		FROM wishlist_items wi
		JOIN products p ON wi.product_id = p.id
		WHERE wi.user_id = $1
		ORDER BY wi.created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}

	defer rows.Close()

	var items []models.WishlistItem

	for rows.Next() {

		item := models.WishlistItem{UserID: userID, Product: &models.Product{}}

		err := rows.Scan(&item.ID, &item.ProductID, &item.CreatedAt,
			&item.Product.Name, &item.Product.Price, &item.Product.StockLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}

		item.Product.ID = item.ProductID

		items = append(items, item)
	}

	return items, rows.Err()
}
