package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewOrderRepository(db)
	require.NotNil(t, repo)

	return repo, mock
}

var (
	orderInsertSQL = regexp.QuoteMeta(`
		INSERT INTO orders (id, user_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`)
	orderItemInsertSQL = regexp.QuoteMeta(`
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`)
)

func TestCreateOrder(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	order := &models.Order{
		ID:     orderID,
		UserID: userID,
		Status: models.OrderStatusPending,
		Total:  decimal.NewFromFloat(59.97),
		Items: []models.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromFloat(19.99)},
			{ID: uuid.New(), OrderID: orderID, ProductID: 2, Quantity: 1, UnitPrice: decimal.NewFromFloat(19.99)},
		},
	}

	movements := []*models.StockMovement{
		{ID: uuid.New(), ProductID: 1, MovementType: models.MovementSubtraction, Quantity: 2, UserID: userID},
		{ID: uuid.New(), ProductID: 2, MovementType: models.MovementSubtraction, Quantity: 1, UserID: userID},
	}

	t.Run("Success - Order, Items and Movements Commit Together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(orderInsertSQL).
			WithArgs(order.ID, order.UserID, order.Status, order.Total).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(orderItemInsertSQL).
			WithArgs(order.Items[0].ID, order.ID, order.Items[0].ProductID, order.Items[0].Quantity, order.Items[0].UnitPrice).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(orderItemInsertSQL).
			WithArgs(order.Items[1].ID, order.ID, order.Items[1].ProductID, order.Items[1].Quantity, order.Items[1].UnitPrice).
			WillReturnResult(sqlmock.NewResult(1, 1))

		// First movement
		mock.ExpectQuery(lockSQL).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stock_level"}).AddRow(8))
		mock.ExpectQuery(movementInsertSQL).
			WithArgs(movements[0].ID, movements[0].ProductID, movements[0].MovementType, movements[0].Quantity, movements[0].UserID).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(stockUpdateSQL).
			WithArgs(int64(6), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Second movement
		mock.ExpectQuery(lockSQL).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"stock_level"}).AddRow(5))
		mock.ExpectQuery(movementInsertSQL).
			WithArgs(movements[1].ID, movements[1].ProductID, movements[1].MovementType, movements[1].Quantity, movements[1].UserID).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(stockUpdateSQL).
			WithArgs(int64(4), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		levels, err := repo.CreateOrder(ctx, order, movements)

		assert.NoError(t, err)
		assert.Equal(t, []int64{6, 4}, levels)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insufficient Stock Mid-Order Rolls Back Everything", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(orderInsertSQL).
			WithArgs(order.ID, order.UserID, order.Status, order.Total).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(orderItemInsertSQL).
			WithArgs(order.Items[0].ID, order.ID, order.Items[0].ProductID, order.Items[0].Quantity, order.Items[0].UnitPrice).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(orderItemInsertSQL).
			WithArgs(order.Items[1].ID, order.ID, order.Items[1].ProductID, order.Items[1].Quantity, order.Items[1].UnitPrice).
			WillReturnResult(sqlmock.NewResult(1, 1))

		// First movement succeeds, second finds too little stock.
		mock.ExpectQuery(lockSQL).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stock_level"}).AddRow(8))
		mock.ExpectQuery(movementInsertSQL).
			WithArgs(movements[0].ID, movements[0].ProductID, movements[0].MovementType, movements[0].Quantity, movements[0].UserID).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec(stockUpdateSQL).
			WithArgs(int64(6), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(lockSQL).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"stock_level"}).AddRow(0))
		mock.ExpectRollback()

		_, err := repo.CreateOrder(ctx, order, movements)

		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Order Insert Error", func(t *testing.T) {
		dbErr := errors.New("DB error on order insert")

		mock.ExpectBegin()
		mock.ExpectQuery(orderInsertSQL).
			WithArgs(order.ID, order.UserID, order.Status, order.Total).
			WillReturnError(dbErr)
		mock.ExpectRollback()

		_, err := repo.CreateOrder(ctx, order, movements)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOrderById(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	orderSelectSQL := regexp.QuoteMeta(`
		SELECT user_id, status, total, created_at, updated_at
		FROM orders
		WHERE id = $1
	`)
	itemsSelectSQL := regexp.QuoteMeta(`
		SELECT id, product_id, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(orderSelectSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "status", "total", "created_at", "updated_at"}).
				AddRow(userID, models.OrderStatusPending, "39.98", now, now))
		mock.ExpectQuery(itemsSelectSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "quantity", "unit_price", "created_at"}).
				AddRow(uuid.New(), int64(1), int64(2), "19.99", now))

		order, err := repo.GetOrderById(ctx, orderID)

		require.NoError(t, err)
		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		require.Len(t, order.Items, 1)
		assert.Equal(t, orderID, order.Items[0].OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectQuery(orderSelectSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "status", "total", "created_at", "updated_at"}))

		_, err := repo.GetOrderById(ctx, orderID)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	orderID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	updateSQL := regexp.QuoteMeta(`
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING user_id, total, created_at, updated_at
	`)
	itemsSelectSQL := regexp.QuoteMeta(`
		SELECT id, product_id, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(updateSQL).
			WithArgs(models.OrderStatusShipped, orderID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "total", "created_at", "updated_at"}).
				AddRow(userID, "19.99", now, now))
		mock.ExpectQuery(itemsSelectSQL).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "quantity", "unit_price", "created_at"}))

		order, err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mock.ExpectQuery(updateSQL).
			WithArgs(models.OrderStatusShipped, orderID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "total", "created_at", "updated_at"}))

		_, err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
