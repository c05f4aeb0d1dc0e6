package service

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/cache"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderById(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	notifications NotificationService
	cache         cache.Cache
	lowStockAt    int64
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, notifications NotificationService, productCache cache.Cache, lowStockAt int64) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		notifications: notifications,
		cache:         productCache,
		lowStockAt:    lowStockAt,
	}
}

// CreateOrder builds a PENDING order from the requested items. Unit prices
// are captured from the catalog at order time and the total is the sum of
// quantity times unit price; the order row, its items and one subtraction
// movement per item all commit together. An order that would oversell any
// product rolls back completely.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *models.CreateOrderRequest) (*models.Order, error) {

	if len(req.Items) == 0 {
		return nil, errors.InvalidOrderError("Order must have at least one item.")
	}

	order := &models.Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: models.OrderStatusPending,
		Total:  decimal.Zero,
	}

	products := make([]*models.Product, 0, len(req.Items))
	movements := make([]*models.StockMovement, 0, len(req.Items))

	for _, item := range req.Items {

		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.NotFoundError(fmt.Sprintf("Product not found: %d", item.ProductID)).WithError(err)
		}

		if product.StockLevel < item.Quantity {
			return nil, errors.InsufficientStockError("Insufficient stock for product: " + product.Name)
		}

		orderItem := models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		}

		order.Items = append(order.Items, orderItem)
		order.Total = order.Total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))

		products = append(products, product)
		movements = append(movements, &models.StockMovement{
			ID:           uuid.New(),
			ProductID:    item.ProductID,
			MovementType: models.MovementSubtraction,
			Quantity:     item.Quantity,
			UserID:       userID,
		})
	}

	levels, err := s.orderRepo.CreateOrder(ctx, order, movements)
	if err != nil {
		if stdErrors.Is(err, repository.ErrInsufficientStock) {
			// The pre-check above raced with another writer; the row locks
			// caught it and rolled everything back.
			return nil, errors.InsufficientStockError("Insufficient stock for this operation.")
		}

		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	for i, product := range products {
		if s.cache != nil {
			_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, itoa(product.ID)))
		}

		if levels[i] <= s.lowStockAt {
			s.notifications.NotifyLowStock(ctx, product.ID, product.Name, levels[i])
		}
	}

	return order, nil
}

func (s *orderService) GetOrderById(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderById(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {

	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

// UpdateOrderStatus applies an administrative transition (cancellation,
// fulfillment). PENDING to PROCESSING is not available here; that edge
// only exists on the payment path.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	order, err := s.GetOrderById(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(status) {
		return nil, errors.BadRequestError(fmt.Sprintf("Cannot transition order from %s to %s", order.Status, status))
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return updated, nil
}
