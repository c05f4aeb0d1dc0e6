package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monokpe/james-ecom/internal/models"
	"github.com/monokpe/james-ecom/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO products (name, description, price, category_id, attribute_id, stock_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.CategoryID, product.AttributeID, product.StockLevel).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := replaceTagsTx(dbCtx, tx, product); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceTagsTx(ctx context.Context, tx *sql.Tx, product *models.Product) error {

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_tags WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("failed to clear product tags: %w", err)
	}

	for _, tag := range product.Tags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO product_tags (product_id, tag_id) VALUES ($1, $2)`, product.ID, tag.ID); err != nil {
			return fmt.Errorf("failed to insert product tag: %w", err)
		}
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT p.id, p.name, p.description, p.price, p.category_id, p.attribute_id, p.stock_level, p.created_at, p.updated_at,
		       c.id, c.name, a.id, a.name
		FROM products p
		JOIN categories c ON p.category_id = c.id
		JOIN product_attributes a ON p.attribute_id = a.id
		WHERE p.id = $1
	`

	var (
		category  models.Category
		attribute models.ProductAttribute
	)

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price,
		&product.CategoryID, &product.AttributeID, &product.StockLevel,
		&product.CreatedAt, &product.UpdatedAt,
		&category.ID, &category.Name, &attribute.ID, &attribute.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Category = &category
	product.Attribute = &attribute

	tags, err := r.loadTags(dbCtx, id)
	if err != nil {
		return nil, err
	}

	product.Tags = tags

	return product, nil
}

func (r *productRepository) loadTags(ctx context.Context, productID int64) ([]models.Tag, error) {

	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = $1
		ORDER BY t.name
	`

	rows, err := r.DB.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product tags: %w", err)
	}

	defer rows.Close()

	var tags []models.Tag

	for rows.Next() {

		var tag models.Tag

		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}

		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		UPDATE products SET name = $1, description = $2, price = $3, category_id = $4, attribute_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.CategoryID, product.AttributeID, product.ID).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update product: %w", err)
	}

	if err := replaceTagsTx(dbCtx, tx, product); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := ""
	args := []any{}

	if q.Search != "" {
		where = `WHERE p.name ILIKE $1 OR p.description ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products p ` + where

	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Ordering is restricted to a fixed set; anything else falls back to id.
	orderBy := "p.id"

	switch q.OrderBy {
	case "name":
		orderBy = "p.name"
	case "price":
		orderBy = "p.price"
	}

	offset := (q.Page - 1) * q.PageSize

	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.description, p.price, p.category_id, p.attribute_id, p.stock_level, p.created_at, p.updated_at
		FROM products p
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, where, orderBy, len(args)+1, len(args)+2)

	args = append(args, q.PageSize, offset)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {

		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.CategoryID, &product.AttributeID, &product.StockLevel, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
