package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	appErrors "github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	repoMocks "github.com/monokpe/james-ecom/internal/repositories/mocks"
	service "github.com/monokpe/james-ecom/internal/services"
	serviceMocks "github.com/monokpe/james-ecom/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryServiceFixture struct {
	stockRepo     *repoMocks.MockStockRepository
	productRepo   *repoMocks.MockProductRepository
	notifications *serviceMocks.NotificationService
	svc           service.InventoryService
}

func newInventoryServiceFixture(t *testing.T) *inventoryServiceFixture {
	f := &inventoryServiceFixture{
		stockRepo:     repoMocks.NewMockStockRepository(t),
		productRepo:   repoMocks.NewMockProductRepository(t),
		notifications: new(serviceMocks.NotificationService),
	}
	f.svc = service.NewInventoryService(f.stockRepo, f.productRepo, f.notifications, nil, testLowStockThreshold)

	return f
}

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Addition", func(t *testing.T) {
		f := newInventoryServiceFixture(t)

		f.productRepo.On("GetProductByID", mock.Anything, int64(1)).Return(&models.Product{
			ID: 1, Name: "Mechanical Keyboard", StockLevel: 20,
		}, nil)
		f.stockRepo.On("ApplyMovement", mock.Anything, mock.MatchedBy(func(m *models.StockMovement) bool {
			return m.ProductID == 1 && m.MovementType == models.MovementAddition &&
				m.Quantity == 5 && m.UserID == userID
		})).Return(int64(25), nil)

		resp, err := f.svc.AdjustStock(ctx, userID, &models.CreateStockMovementRequest{
			ProductID:    1,
			MovementType: models.MovementAddition,
			Quantity:     5,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(25), resp.StockLevel)
		assert.Equal(t, models.MovementAddition, resp.Movement.MovementType)
		f.notifications.AssertNotCalled(t, "NotifyLowStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Subtraction Below Threshold Notifies", func(t *testing.T) {
		f := newInventoryServiceFixture(t)

		f.productRepo.On("GetProductByID", mock.Anything, int64(1)).Return(&models.Product{
			ID: 1, Name: "Mechanical Keyboard", StockLevel: 12,
		}, nil)
		f.stockRepo.On("ApplyMovement", mock.Anything, mock.Anything).Return(int64(3), nil)
		f.notifications.On("NotifyLowStock", mock.Anything, int64(1), "Mechanical Keyboard", int64(3)).Return()

		resp, err := f.svc.AdjustStock(ctx, userID, &models.CreateStockMovementRequest{
			ProductID:    1,
			MovementType: models.MovementSubtraction,
			Quantity:     9,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.StockLevel)
		f.notifications.AssertExpectations(t)
	})

	t.Run("Insufficient Stock", func(t *testing.T) {
		f := newInventoryServiceFixture(t)

		f.productRepo.On("GetProductByID", mock.Anything, int64(1)).Return(&models.Product{
			ID: 1, Name: "Mechanical Keyboard", StockLevel: 2,
		}, nil)
		f.stockRepo.On("ApplyMovement", mock.Anything, mock.Anything).
			Return(int64(0), repository.ErrInsufficientStock)

		_, err := f.svc.AdjustStock(ctx, userID, &models.CreateStockMovementRequest{
			ProductID:    1,
			MovementType: models.MovementSubtraction,
			Quantity:     5,
		})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, appErr.Code)
		f.notifications.AssertNotCalled(t, "NotifyLowStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Product Not Found", func(t *testing.T) {
		f := newInventoryServiceFixture(t)

		f.productRepo.On("GetProductByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

		_, err := f.svc.AdjustStock(ctx, userID, &models.CreateStockMovementRequest{
			ProductID:    99,
			MovementType: models.MovementAddition,
			Quantity:     5,
		})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		f.stockRepo.AssertNotCalled(t, "ApplyMovement", mock.Anything, mock.Anything)
	})
}

func TestListMovements(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newInventoryServiceFixture(t)

		movements := []models.StockMovement{
			{ID: uuid.New(), ProductID: 1, MovementType: models.MovementAddition, Quantity: 10},
			{ID: uuid.New(), ProductID: 1, MovementType: models.MovementSubtraction, Quantity: 4},
		}
		f.stockRepo.On("ListMovementsByProduct", mock.Anything, int64(1), 1, 10).Return(movements, 2, nil)

		got, total, err := f.svc.ListMovements(ctx, 1, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, got, 2)
	})

	t.Run("Repository Error", func(t *testing.T) {
		f := newInventoryServiceFixture(t)

		f.stockRepo.On("ListMovementsByProduct", mock.Anything, int64(1), 1, 10).
			Return(nil, 0, assert.AnError)

		_, _, err := f.svc.ListMovements(ctx, 1, 1, 10)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}
