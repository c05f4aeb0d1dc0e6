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
	stripeMocks "github.com/monokpe/james-ecom/pkg/stripe/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

type paymentServiceFixture struct {
	paymentRepo   *repoMocks.MockPaymentRepository
	orderRepo     *repoMocks.MockOrderRepository
	gateway       *stripeMocks.MockClient
	notifications *serviceMocks.NotificationService
	svc           service.PaymentService
}

func newPaymentServiceFixture(t *testing.T) *paymentServiceFixture {
	f := &paymentServiceFixture{
		paymentRepo:   repoMocks.NewMockPaymentRepository(t),
		orderRepo:     repoMocks.NewMockOrderRepository(t),
		gateway:       stripeMocks.NewMockClient(t),
		notifications: new(serviceMocks.NotificationService),
	}
	f.svc = service.NewPaymentService(f.paymentRepo, f.orderRepo, f.gateway, f.notifications)

	return f
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		orderID := uuid.New()
		order := &models.Order{ID: orderID, Status: models.OrderStatusPending, Total: decimal.NewFromFloat(39.98)}

		f.orderRepo.On("GetOrderById", mock.Anything, orderID).Return(order, nil)
		f.gateway.On("CreatePaymentIntent", int64(3998), "usd", "Order "+orderID.String()).
			Return(&stripe.PaymentIntent{ClientSecret: "pi_secret_123"}, nil)
		f.paymentRepo.On("CreatePaymentForPendingOrder", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.OrderID == orderID && p.Success && p.ClientToken == "pi_secret_123" &&
				p.Amount.Equal(decimal.NewFromFloat(39.98))
		})).Return(nil)
		f.notifications.On("NotifyOrderConfirmed", mock.Anything, "buyer@example.com", orderID).Return()

		resp, err := f.svc.ConfirmPayment(ctx, "buyer@example.com", &models.CreatePaymentRequest{
			OrderID: orderID,
			Amount:  39.98,
			Gateway: "stripe",
		})

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusProcessing, resp.Order.Status)
		assert.True(t, resp.Payment.Success)
		f.notifications.AssertExpectations(t)
	})

	t.Run("Order Not Found", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		orderID := uuid.New()
		f.orderRepo.On("GetOrderById", mock.Anything, orderID).Return(nil, repository.ErrNotFound)

		_, err := f.svc.ConfirmPayment(ctx, "buyer@example.com", &models.CreatePaymentRequest{
			OrderID: orderID, Amount: 10, Gateway: "stripe",
		})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Order Already Paid", func(t *testing.T) {
		for _, status := range []models.OrderStatus{
			models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered,
		} {
			f := newPaymentServiceFixture(t)

			orderID := uuid.New()
			f.orderRepo.On("GetOrderById", mock.Anything, orderID).
				Return(&models.Order{ID: orderID, Status: status}, nil)

			_, err := f.svc.ConfirmPayment(ctx, "buyer@example.com", &models.CreatePaymentRequest{
				OrderID: orderID, Amount: 10, Gateway: "stripe",
			})

			var appErr *appErrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, appErrors.ErrCodeOrderAlreadyPaid, appErr.Code)
			f.gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Cancelled Order Cannot Be Paid", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		orderID := uuid.New()
		f.orderRepo.On("GetOrderById", mock.Anything, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusCancelled}, nil)

		_, err := f.svc.ConfirmPayment(ctx, "buyer@example.com", &models.CreatePaymentRequest{
			OrderID: orderID, Amount: 10, Gateway: "stripe",
		})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Gateway Declines", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		orderID := uuid.New()
		f.orderRepo.On("GetOrderById", mock.Anything, orderID).
			Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil)
		f.gateway.On("CreatePaymentIntent", int64(1000), "usd", "Order "+orderID.String()).
			Return(nil, assert.AnError)

		_, err := f.svc.ConfirmPayment(ctx, "buyer@example.com", &models.CreatePaymentRequest{
			OrderID: orderID, Amount: 10, Gateway: "stripe",
		})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeGateway, appErr.Code)

		// A declined charge must leave nothing behind; the order stays
		// PENDING and the client may retry.
		f.paymentRepo.AssertNotCalled(t, "CreatePaymentForPendingOrder", mock.Anything, mock.Anything)
		f.notifications.AssertNotCalled(t, "NotifyOrderConfirmed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Order Flipped By Concurrent Payment", func(t *testing.T) {
		for _, repoErr := range []error{repository.ErrOrderNotPending, repository.ErrDuplicatePayment} {
			f := newPaymentServiceFixture(t)

			orderID := uuid.New()
			f.orderRepo.On("GetOrderById", mock.Anything, orderID).
				Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil)
			f.gateway.On("CreatePaymentIntent", int64(1000), "usd", "Order "+orderID.String()).
				Return(&stripe.PaymentIntent{ClientSecret: "pi_secret_123"}, nil)
			f.paymentRepo.On("CreatePaymentForPendingOrder", mock.Anything, mock.Anything).Return(repoErr)

			_, err := f.svc.ConfirmPayment(ctx, "buyer@example.com", &models.CreatePaymentRequest{
				OrderID: orderID, Amount: 10, Gateway: "stripe",
			})

			var appErr *appErrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, appErrors.ErrCodeOrderAlreadyPaid, appErr.Code)
			f.notifications.AssertNotCalled(t, "NotifyOrderConfirmed", mock.Anything, mock.Anything, mock.Anything)
		}
	})
}

func TestCreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Currency To USD", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		f.gateway.On("CreatePaymentIntent", int64(2550), "usd", "").
			Return(&stripe.PaymentIntent{ClientSecret: "pi_secret_456"}, nil)

		resp, err := f.svc.CreatePaymentIntent(ctx, &models.CreatePaymentIntentRequest{Amount: 25.50})

		require.NoError(t, err)
		assert.Equal(t, "pi_secret_456", resp.ClientSecret)
	})

	t.Run("Gateway Error", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		f.gateway.On("CreatePaymentIntent", int64(2550), "eur", "").Return(nil, assert.AnError)

		_, err := f.svc.CreatePaymentIntent(ctx, &models.CreatePaymentIntentRequest{Amount: 25.50, Currency: "eur"})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeGateway, appErr.Code)
	})
}

func TestGetPaymentByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		paymentID := uuid.New()
		f.paymentRepo.On("GetPaymentByID", mock.Anything, paymentID).
			Return(&models.Payment{ID: paymentID, Success: true}, nil)

		payment, err := f.svc.GetPaymentByID(ctx, paymentID)

		require.NoError(t, err)
		assert.Equal(t, paymentID, payment.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newPaymentServiceFixture(t)

		paymentID := uuid.New()
		f.paymentRepo.On("GetPaymentByID", mock.Anything, paymentID).Return(nil, repository.ErrNotFound)

		_, err := f.svc.GetPaymentByID(ctx, paymentID)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
