package service

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
)

type WishlistService interface {
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddWishlistItemRequest) (*models.WishlistItem, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
}

type wishlistService struct {
	repo        repository.WishlistRepository
	productRepo repository.ProductRepository
}

func NewWishlistService(repo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{repo: repo, productRepo: productRepo}
}

func (s *wishlistService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddWishlistItemRequest) (*models.WishlistItem, error) {

	if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: req.ProductID,
	}

	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, errors.DatabaseError("Failed to add item to wishlist").WithError(err)
	}

	return item, nil
}

func (s *wishlistService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID int64) error {

	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Wishlist item not found").WithError(err)
		}

		return errors.DatabaseError("Failed to remove wishlist item").WithError(err)
	}

	return nil
}

func (s *wishlistService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch wishlist items").WithError(err)
	}

	return items, nil
}
