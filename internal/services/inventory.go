package service

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/cache"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
)

type InventoryService interface {
	AdjustStock(ctx context.Context, userID uuid.UUID, req *models.CreateStockMovementRequest) (*models.StockMovementResponse, error)
	ListMovements(ctx context.Context, productID int64, page, size int) ([]models.StockMovement, int, error)
}

type inventoryService struct {
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	notifications NotificationService
	cache         cache.Cache
	lowStockAt    int64
}

func NewInventoryService(stockRepo repository.StockRepository, productRepo repository.ProductRepository, notifications NotificationService, productCache cache.Cache, lowStockAt int64) InventoryService {
	return &inventoryService{
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		notifications: notifications,
		cache:         productCache,
		lowStockAt:    lowStockAt,
	}
}

// AdjustStock applies one movement to a product. The movement record and
// the stock change land in the same transaction; an over-subtraction
// persists neither. The low-stock check runs only after a successful
// commit, so metadata-only product edits never trigger it.
func (s *inventoryService) AdjustStock(ctx context.Context, userID uuid.UUID, req *models.CreateStockMovementRequest) (*models.StockMovementResponse, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	movement := &models.StockMovement{
		ID:           uuid.New(),
		ProductID:    req.ProductID,
		MovementType: req.MovementType,
		Quantity:     req.Quantity,
		UserID:       userID,
	}

	newLevel, err := s.stockRepo.ApplyMovement(ctx, movement)
	if err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrInsufficientStock):
			return nil, errors.InsufficientStockError("Insufficient stock for this operation.")
		case stdErrors.Is(err, repository.ErrNotFound):
			return nil, errors.NotFoundError("Product not found").WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to apply stock movement").WithError(err)
		}
	}

	s.afterStockChange(ctx, product, newLevel)

	return &models.StockMovementResponse{
		Movement:   movement,
		StockLevel: newLevel,
	}, nil
}

// afterStockChange invalidates the cached product and fires the low-stock
// observer when the committed level is at or below the threshold.
func (s *inventoryService) afterStockChange(ctx context.Context, product *models.Product, newLevel int64) {

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, itoa(product.ID)))
	}

	if newLevel <= s.lowStockAt {
		s.notifications.NotifyLowStock(ctx, product.ID, product.Name, newLevel)
	}
}

func (s *inventoryService) ListMovements(ctx context.Context, productID int64, page, size int) ([]models.StockMovement, int, error) {

	movements, total, err := s.stockRepo.ListMovementsByProduct(ctx, productID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch stock movements").WithError(err)
	}

	return movements, total, nil
}
