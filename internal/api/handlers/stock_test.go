package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/api/handlers"
	appErrors "github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	serviceMocks "github.com/monokpe/james-ecom/internal/services/mocks"
	"github.com/monokpe/james-ecom/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStockMovementHandler(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		userID := uuid.New()
		mockService.On("AdjustStock", mock.Anything, userID, mock.MatchedBy(func(req *models.CreateStockMovementRequest) bool {
			return req.ProductID == 1 && req.MovementType == models.MovementAddition && req.Quantity == 5
		})).Return(&models.StockMovementResponse{
			Movement:   &models.StockMovement{ID: uuid.New(), ProductID: 1, MovementType: models.MovementAddition, Quantity: 5},
			StockLevel: 25,
		}, nil)

		body := bytes.NewBufferString(`{"product":1,"movement_type":"addition","quantity":5}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/stock-movements", body, userID, nil)
		rr := httptest.NewRecorder()

		handler.CreateStockMovement()(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeAPIResponse(t, rr)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		body := bytes.NewBufferString(`{"product":1,"movement_type":"addition","quantity":5}`)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/stock-movements", body, nil)
		rr := httptest.NewRecorder()

		handler.CreateStockMovement()(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid Movement Type", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		body := bytes.NewBufferString(`{"product":1,"movement_type":"teleport","quantity":5}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/stock-movements", body, uuid.New(), nil)
		rr := httptest.NewRecorder()

		handler.CreateStockMovement()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero Quantity", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		body := bytes.NewBufferString(`{"product":1,"movement_type":"subtraction","quantity":0}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/stock-movements", body, uuid.New(), nil)
		rr := httptest.NewRecorder()

		handler.CreateStockMovement()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Insufficient Stock", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		userID := uuid.New()
		mockService.On("AdjustStock", mock.Anything, userID, mock.Anything).
			Return(nil, appErrors.InsufficientStockError("Insufficient stock for this operation."))

		body := bytes.NewBufferString(`{"product":1,"movement_type":"subtraction","quantity":500}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/stock-movements", body, userID, nil)
		rr := httptest.NewRecorder()

		handler.CreateStockMovement()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeAPIResponse(t, rr)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeInsufficientStock, resp.Error.Code)
	})
}

func TestListStockMovementsHandler(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		movements := []models.StockMovement{
			{ID: uuid.New(), ProductID: 1, MovementType: models.MovementAddition, Quantity: 10},
		}
		mockService.On("ListMovements", mock.Anything, int64(1), 1, 10).Return(movements, 1, nil)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products/1/stock-movements", nil,
			uuid.New(), map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		handler.ListStockMovements()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeAPIResponse(t, rr)
		assert.True(t, resp.Success)
	})

	t.Run("Invalid Product ID", func(t *testing.T) {
		mockService := new(serviceMocks.InventoryService)
		handler := handlers.NewStockHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/products/abc/stock-movements", nil,
			uuid.New(), map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.ListStockMovements()(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "ListMovements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
