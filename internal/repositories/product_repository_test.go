package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewProductRepo(db)
	require.NotNil(t, repo)

	return repo, mock
}

var (
	productInsertSQL = regexp.QuoteMeta(`
		INSERT INTO products (name, description, price, category_id, attribute_id, stock_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`)
	clearTagsSQL     = regexp.QuoteMeta(`DELETE FROM product_tags WHERE product_id = $1`)
	insertTagSQL     = regexp.QuoteMeta(`INSERT INTO product_tags (product_id, tag_id) VALUES ($1, $2)`)
	loadTagsSQL      = regexp.QuoteMeta(`
		SELECT t.id, t.name
		FROM tags t
		JOIN product_tags pt ON pt.tag_id = t.id
		WHERE pt.product_id = $1
		ORDER BY t.name
	`)
	productGetSQL    = regexp.QuoteMeta(`
		SELECT p.id, p.name, p.description, p.price, p.category_id, p.attribute_id, p.stock_level, p.created_at, p.updated_at,
		       c.id, c.name, a.id, a.name
		FROM products p
		JOIN categories c ON p.category_id = c.id
		JOIN product_attributes a ON p.attribute_id = a.id
		WHERE p.id = $1
	`)
)

func TestCreateProduct(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	product := &models.Product{
		Name:        "Mechanical Keyboard",
		Description: "Tenkeyless, hot-swappable switches.",
		Price:       decimal.NewFromFloat(119.99),
		CategoryID:  1,
		AttributeID: 2,
		StockLevel:  25,
		Tags:        []models.Tag{{ID: 3}, {ID: 4}},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(productInsertSQL).
			WithArgs(product.Name, product.Description, product.Price, product.CategoryID, product.AttributeID, product.StockLevel).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
		mock.ExpectExec(clearTagsSQL).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertTagSQL).
			WithArgs(int64(7), int64(3)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertTagSQL).
			WithArgs(int64(7), int64(4)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateProduct(ctx, product)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), product.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProductByID(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(productGetSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "description", "price", "category_id", "attribute_id", "stock_level", "created_at", "updated_at",
				"c_id", "c_name", "a_id", "a_name",
			}).AddRow(7, "Mechanical Keyboard", "Tenkeyless.", "119.99", 1, 2, 25, now, now, 1, "Peripherals", 2, "Switch Type"))
		mock.ExpectQuery(loadTagsSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "keyboard"))

		product, err := repo.GetProductByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Mechanical Keyboard", product.Name)
		require.NotNil(t, product.Category)
		assert.Equal(t, "Peripherals", product.Category.Name)
		require.Len(t, product.Tags, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectQuery(productGetSQL).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "description", "price", "category_id", "attribute_id", "stock_level", "created_at", "updated_at",
				"c_id", "c_name", "a_id", "a_name",
			}))

		_, err := repo.GetProductByID(ctx, 99)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteProduct(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	deleteSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(deleteSQL).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteProduct(ctx, 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectExec(deleteSQL).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteProduct(ctx, 99), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListProducts(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	t.Run("Success - With Search", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.name ILIKE $1 OR p.description ILIKE $1`)).
			WithArgs("%keyboard%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT p\.id, p\.name, p\.description, p\.price, .* ORDER BY p\.price`).
			WithArgs("%keyboard%", 10, 0).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "description", "price", "category_id", "attribute_id", "stock_level", "created_at", "updated_at",
			}).AddRow(7, "Mechanical Keyboard", "Tenkeyless.", "119.99", 1, 2, 25, now, now))

		products, total, err := repo.ListProducts(ctx, models.ListProductsQuery{
			Search:   "keyboard",
			OrderBy:  "price",
			Page:     1,
			PageSize: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
