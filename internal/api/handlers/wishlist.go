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

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, validator: validator.New()}
}

func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized wishlist access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.AddWishlistItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add wishlist item input")

			return
		}

		item, err := h.wishlistService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add wishlist item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Wishlist item added", slog.Int64("productId", req.ProductID))
		response.Success(w, http.StatusCreated, item)
	}
}

func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized wishlist access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid wishlist item id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.wishlistService.RemoveItem(r.Context(), claims.UserID, itemID); err != nil {
			logger.Error("Failed to remove wishlist item", slog.Int64("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusNoContent, nil)
	}
}

func (h *WishlistHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized wishlist access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		items, err := h.wishlistService.ListItems(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list wishlist items", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, items)
	}
}
