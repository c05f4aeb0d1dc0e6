package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/monokpe/james-ecom/internal/models"
	"github.com/monokpe/james-ecom/internal/utils"
)

// CatalogRepository covers the flat catalog metadata: categories, tags and
// attribute sets. All three are id+unique-name rows, so one repository with
// a shared helper keeps the SQL in one place.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateTag(ctx context.Context, t *models.Tag) error
	ListTags(ctx context.Context) ([]models.Tag, error)
	DeleteTag(ctx context.Context, id int64) error

	CreateAttribute(ctx context.Context, a *models.ProductAttribute) error
	ListAttributes(ctx context.Context) ([]models.ProductAttribute, error)
	DeleteAttribute(ctx context.Context, id int64) error
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

func (r *catalogRepository) insertNamed(ctx context.Context, table, name string) (int64, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var id int64

	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, table)

	err := r.DB.QueryRowContext(dbCtx, query, name).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return 0, fmt.Errorf("%s name already exists: %w", table, err)
		}

		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return id, nil
}

func (r *catalogRepository) deleteByID(ctx context.Context, table string, id int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
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

func (r *catalogRepository) listNamed(ctx context.Context, table string) (*sql.Rows, context.CancelFunc, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)

	rows, err := r.DB.QueryContext(dbCtx, fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM %s ORDER BY name`, table))
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to list %s: %w", table, err)
	}

	return rows, cancel, nil
}

func (r *catalogRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	id, err := r.insertNamed(ctx, "categories", c.Name)
	if err != nil {
		return err
	}

	c.ID = id

	return nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {

	rows, cancel, err := r.listNamed(ctx, "categories")
	if err != nil {
		return nil, err
	}

	defer cancel()
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {

		var c models.Category

		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "categories", id)
}

func (r *catalogRepository) CreateTag(ctx context.Context, t *models.Tag) error {
	id, err := r.insertNamed(ctx, "tags", t.Name)
	if err != nil {
		return err
	}

	t.ID = id

	return nil
}

func (r *catalogRepository) ListTags(ctx context.Context) ([]models.Tag, error) {

	rows, cancel, err := r.listNamed(ctx, "tags")
	if err != nil {
		return nil, err
	}

	defer cancel()
	defer rows.Close()

	var tags []models.Tag

	for rows.Next() {

		var t models.Tag

		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}

		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func (r *catalogRepository) DeleteTag(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "tags", id)
}

func (r *catalogRepository) CreateAttribute(ctx context.Context, a *models.ProductAttribute) error {
	id, err := r.insertNamed(ctx, "product_attributes", a.Name)
	if err != nil {
		return err
	}

	a.ID = id

	return nil
}

func (r *catalogRepository) ListAttributes(ctx context.Context) ([]models.ProductAttribute, error) {

	rows, cancel, err := r.listNamed(ctx, "product_attributes")
	if err != nil {
		return nil, err
	}

	defer cancel()
	defer rows.Close()

	var attributes []models.ProductAttribute

	for rows.Next() {

		var a models.ProductAttribute

		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attribute: %w", err)
		}

		attributes = append(attributes, a)
	}

	return attributes, rows.Err()
}

func (r *catalogRepository) DeleteAttribute(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "product_attributes", id)
}
