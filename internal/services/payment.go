package service

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	"github.com/monokpe/james-ecom/pkg/stripe"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "usd"

type PaymentService interface {
	ConfirmPayment(ctx context.Context, userEmail string, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	CreatePaymentIntent(ctx context.Context, req *models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo   repository.PaymentRepository
	orderRepo     repository.OrderRepository
	gateway       stripe.Client
	notifications NotificationService
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, gateway stripe.Client, notifications NotificationService) PaymentService {
	return &paymentService{
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		gateway:       gateway,
		notifications: notifications,
	}
}

// ConfirmPayment authorizes the charge with the gateway and, on success,
// persists the payment and moves the order PENDING → PROCESSING in one
// transaction. The gateway call happens before and outside that
// transaction; a gateway failure leaves the order PENDING with nothing
// persisted, and the client may retry.
func (s *paymentService) ConfirmPayment(ctx context.Context, userEmail string, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {

	order, err := s.orderRepo.GetOrderById(ctx, req.OrderID)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	switch order.Status {
	case models.OrderStatusPending:
		// confirmable
	case models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered:
		return nil, errors.OrderAlreadyPaidError("Order has already been paid.")
	default:
		return nil, errors.BadRequestError("Order cannot be paid in its current state")
	}

	amount := decimal.NewFromFloat(req.Amount).Round(2)

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	intent, err := s.gateway.CreatePaymentIntent(toMinorUnits(amount), currency, "Order "+order.ID.String())
	if err != nil {
		return nil, errors.GatewayError("Payment gateway rejected the charge").WithError(err)
	}

	payment := &models.Payment{
		ID:          uuid.New(),
		OrderID:     order.ID,
		Amount:      amount,
		Gateway:     req.Gateway,
		Success:     true,
		ClientToken: intent.ClientSecret,
	}

	if err := s.paymentRepo.CreatePaymentForPendingOrder(ctx, payment); err != nil {
		if stdErrors.Is(err, repository.ErrOrderNotPending) || stdErrors.Is(err, repository.ErrDuplicatePayment) {
			return nil, errors.OrderAlreadyPaidError("Order has already been paid.")
		}

		return nil, errors.DatabaseError("Failed to record payment").WithError(err)
	}

	order.Status = models.OrderStatusProcessing

	s.notifications.NotifyOrderConfirmed(ctx, userEmail, order.ID)

	return &models.PaymentResponse{
		Payment: payment,
		Order:   order,
	}, nil
}

// CreatePaymentIntent is the bare gateway boundary: authorize an amount,
// hand the client secret back.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error) {

	amount := decimal.NewFromFloat(req.Amount).Round(2)

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	intent, err := s.gateway.CreatePaymentIntent(toMinorUnits(amount), currency, "")
	if err != nil {
		return nil, errors.GatewayError("Failed to create payment intent").WithError(err)
	}

	return &models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {

	payment, err := s.paymentRepo.GetPaymentByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Payment not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch payment").WithError(err)
	}

	return payment, nil
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}
