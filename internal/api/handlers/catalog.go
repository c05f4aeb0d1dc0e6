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

// CatalogHandler serves the classification endpoints: categories, tags and
// attributes. They share the same create/list/delete shape.
type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

func (h *CatalogHandler) requireClaims(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Unauthorized catalog write attempt")
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return false
	}

	return true
}

func (h *CatalogHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !h.requireClaims(w, r) {
			return
		}

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create category input")

			return
		}

		category, err := h.catalogService.CreateCategory(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Category created successfully", slog.Int64("categoryId", category.ID))
		response.Success(w, http.StatusCreated, category)
	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

func (h *CatalogHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !h.requireClaims(w, r) {
			return
		}

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid category id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
			logger.Error("Failed to delete category", slog.Int64("categoryId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusNoContent, nil)
	}
}

func (h *CatalogHandler) CreateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !h.requireClaims(w, r) {
			return
		}

		var req models.CreateTagRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create tag input")

			return
		}

		tag, err := h.catalogService.CreateTag(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create tag", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Tag created successfully", slog.Int64("tagId", tag.ID))
		response.Success(w, http.StatusCreated, tag)
	}
}

func (h *CatalogHandler) ListTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		tags, err := h.catalogService.ListTags(r.Context())
		if err != nil {
			logger.Error("Failed to list tags", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, tags)
	}
}

func (h *CatalogHandler) DeleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !h.requireClaims(w, r) {
			return
		}

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid tag id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.catalogService.DeleteTag(r.Context(), id); err != nil {
			logger.Error("Failed to delete tag", slog.Int64("tagId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusNoContent, nil)
	}
}

func (h *CatalogHandler) CreateAttribute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !h.requireClaims(w, r) {
			return
		}

		var req models.CreateAttributeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create attribute input")

			return
		}

		attribute, err := h.catalogService.CreateAttribute(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create attribute", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Attribute created successfully", slog.Int64("attributeId", attribute.ID))
		response.Success(w, http.StatusCreated, attribute)
	}
}

func (h *CatalogHandler) ListAttributes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		attributes, err := h.catalogService.ListAttributes(r.Context())
		if err != nil {
			logger.Error("Failed to list attributes", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, attributes)
	}
}

func (h *CatalogHandler) DeleteAttribute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if !h.requireClaims(w, r) {
			return
		}

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid attribute id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.catalogService.DeleteAttribute(r.Context(), id); err != nil {
			logger.Error("Failed to delete attribute", slog.Int64("attributeId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusNoContent, nil)
	}
}
