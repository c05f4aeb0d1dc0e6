package service

import (
	"context"
	stdErrors "errors"

	"github.com/microcosm-cc/bluemonday"
	"github.com/monokpe/james-ecom/internal/cache"
	"github.com/monokpe/james-ecom/internal/config"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, int, error)
}

type productService struct {
	repo      repository.ProductRepository
	cache     cache.Cache
	cacheCfg  *config.CacheConfig
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache, cacheCfg *config.CacheConfig) ProductService {
	return &productService{
		repo:      repo,
		cache:     productCache,
		cacheCfg:  cacheCfg,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:        req.Name,
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       decimal.NewFromFloat(req.Price).Round(2),
		CategoryID:  req.CategoryID,
		AttributeID: req.AttributeID,
		StockLevel:  req.StockLevel,
	}

	for _, tagID := range req.TagIDs {
		product.Tags = append(product.Tags, models.Tag{ID: tagID})
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, itoa(id))

	if s.cache != nil {
		var cached models.Product

		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, product, s.cacheCfg.ProductTTL)
	}

	return product, nil
}

// UpdateProduct applies a typed patch. Stock is deliberately not
// updatable here; stock only moves through the inventory ledger.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price).Round(2)
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}

	if req.AttributeID != nil {
		product.AttributeID = *req.AttributeID
	}

	if req.TagIDs != nil {
		product.Tags = nil
		for _, tagID := range req.TagIDs {
			product.Tags = append(product.Tags, models.Tag{ID: tagID})
		}
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, itoa(id)))
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Product not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, itoa(id)))
	}

	return nil
}

func (s *productService) ListProducts(ctx context.Context, q models.ListProductsQuery) ([]*models.Product, int, error) {

	products, total, err := s.repo.ListProducts(ctx, q)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}
