package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/monokpe/james-ecom/internal/api/middleware"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	service "github.com/monokpe/james-ecom/internal/services"
	"github.com/monokpe/james-ecom/internal/utils"
	"github.com/monokpe/james-ecom/internal/utils/response"
)

type StockHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewStockHandler(inventoryService service.InventoryService) *StockHandler {
	return &StockHandler{inventoryService: inventoryService, validator: validator.New()}
}

// CreateStockMovement godoc
//	@Summary		Record a stock movement
//	@Description	Applies an addition or subtraction to a product's stock. The movement and the level change are committed atomically; an over-subtraction is rejected and leaves no trace.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			movement	body		models.CreateStockMovementRequest	true	"Movement details"
//	@Success		201			{object}	models.StockMovementResponse		"Movement recorded"
//	@Failure		400			{object}	response.ErrorResponse				"Validation error or insufficient stock"
//	@Failure		401			{object}	response.ErrorResponse				"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse				"Product not found"
//	@Failure		500			{object}	response.ErrorResponse				"Internal server error"
//	@Security		BearerAuth
//	@Router			/stock-movements [post]
func (h *StockHandler) CreateStockMovement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized stock movement attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.CreateStockMovementRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid stock movement input")

			return
		}

		result, err := h.inventoryService.AdjustStock(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to apply stock movement",
				slog.Int64("productId", req.ProductID),
				slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Stock movement recorded",
			slog.Int64("productId", req.ProductID),
			slog.String("movementType", string(req.MovementType)),
			slog.Int64("newLevel", result.StockLevel))
		response.Success(w, http.StatusCreated, result)
	}
}

// ListStockMovements godoc
//	@Summary	List movements for a product
//	@Tags		Inventory
//	@Produce	json
//	@Param		id			path		int														true	"Product ID"
//	@Param		page		query		int														false	"Page number (default: 1)"
//	@Param		pageSize	query		int														false	"Items per page (default: 10, max: 100)"
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.StockMovement}	"Movements, newest first"
//	@Failure	401			{object}	response.ErrorResponse									"Authentication required"
//	@Failure	500			{object}	response.ErrorResponse									"Internal server error"
//	@Security	BearerAuth
//	@Router		/products/{id}/stock-movements [get]
func (h *StockHandler) ListStockMovements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized stock movement list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		productID, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		page, pageSize := utils.Pagination(r)

		movements, total, err := h.inventoryService.ListMovements(r.Context(), productID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list stock movements", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     movements,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}
