package service

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
)

type CartService interface {
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

// AddItem inserts a cart row or merges the quantity into an existing row
// for the same product.
func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error) {

	if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, errors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {

	item, err := s.repo.UpdateQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error {

	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Cart item not found").WithError(err)
		}

		return errors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return nil
}

func (s *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	return items, nil
}
