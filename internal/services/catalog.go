package service

import (
	"context"
	stdErrors "errors"

	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
)

// CatalogService manages the product classification tables: categories,
// tags and attributes.
type CatalogService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateTag(ctx context.Context, req *models.CreateTagRequest) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	DeleteTag(ctx context.Context, id int64) error

	CreateAttribute(ctx context.Context, req *models.CreateAttributeRequest) (*models.ProductAttribute, error)
	ListAttributes(ctx context.Context) ([]models.ProductAttribute, error)
	DeleteAttribute(ctx context.Context, id int64) error
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{Name: req.Name}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id int64) error {

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Category not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete category").WithError(err)
	}

	return nil
}

func (s *catalogService) CreateTag(ctx context.Context, req *models.CreateTagRequest) (*models.Tag, error) {

	tag := &models.Tag{Name: req.Name}

	if err := s.repo.CreateTag(ctx, tag); err != nil {
		return nil, errors.DatabaseError("Failed to create tag").WithError(err)
	}

	return tag, nil
}

func (s *catalogService) ListTags(ctx context.Context) ([]models.Tag, error) {

	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch tags").WithError(err)
	}

	return tags, nil
}

func (s *catalogService) DeleteTag(ctx context.Context, id int64) error {

	if err := s.repo.DeleteTag(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Tag not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete tag").WithError(err)
	}

	return nil
}

func (s *catalogService) CreateAttribute(ctx context.Context, req *models.CreateAttributeRequest) (*models.ProductAttribute, error) {

	attribute := &models.ProductAttribute{Name: req.Name}

	if err := s.repo.CreateAttribute(ctx, attribute); err != nil {
		return nil, errors.DatabaseError("Failed to create attribute").WithError(err)
	}

	return attribute, nil
}

func (s *catalogService) ListAttributes(ctx context.Context) ([]models.ProductAttribute, error) {

	attributes, err := s.repo.ListAttributes(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch attributes").WithError(err)
	}

	return attributes, nil
}

func (s *catalogService) DeleteAttribute(ctx context.Context, id int64) error {

	if err := s.repo.DeleteAttribute(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Attribute not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete attribute").WithError(err)
	}

	return nil
}
