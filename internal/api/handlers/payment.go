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

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// ConfirmPayment godoc
//	@Summary		Confirm payment for an order
//	@Description	Charges the gateway for a PENDING order. On success the payment is recorded and the order moves to PROCESSING. A gateway decline persists nothing; a second confirmation of the same order is rejected.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Payment details"
//	@Success		201		{object}	models.PaymentResponse		"Payment recorded"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error, cancelled order, or gateway decline"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Failure		409		{object}	response.ErrorResponse		"Order already paid"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/payments [post]
func (h *PaymentHandler) ConfirmPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized payment attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		logger = logger.With(slog.String("userID", claims.UserID.String()))

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment input")

			return
		}

		logger = logger.With(slog.String("orderId", req.OrderID.String()))

		result, err := h.paymentService.ConfirmPayment(r.Context(), claims.Email, &req)
		if err != nil {
			logger.Error("Failed to confirm payment", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Payment confirmed successfully", slog.String("paymentId", result.Payment.ID.String()))
		response.Success(w, http.StatusCreated, result)
	}
}

// CreatePaymentIntent godoc
//	@Summary		Create a payment intent
//	@Description	Creates a gateway payment intent and returns its client secret for client-side confirmation.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			intent	body		models.CreatePaymentIntentRequest	true	"Intent details"
//	@Success		200		{object}	models.PaymentIntentResponse		"Client secret"
//	@Failure		400		{object}	response.ErrorResponse				"Validation error or gateway failure"
//	@Failure		401		{object}	response.ErrorResponse				"Authentication required"
//	@Security		BearerAuth
//	@Router			/stripe-payment [post]
func (h *PaymentHandler) CreatePaymentIntent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized payment intent attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.CreatePaymentIntentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment intent input")

			return
		}

		intent, err := h.paymentService.CreatePaymentIntent(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create payment intent", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Payment intent created")
		response.Success(w, http.StatusOK, intent)
	}
}

// GetPayment godoc
//	@Summary	Get a payment by ID
//	@Tags		Payments
//	@Produce	json
//	@Param		id	path		string					true	"Payment ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.Payment			"Successfully retrieved payment"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid payment ID format"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Payment not found"
//	@Security	BearerAuth
//	@Router		/payments/{id} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims); !ok {
			logger.Warn("Unauthorized payment access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := utils.ParseUUID(r, "id")
		if err != nil {
			logger.Warn("Invalid payment id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		payment, err := h.paymentService.GetPaymentByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get payment", slog.String("paymentId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}
