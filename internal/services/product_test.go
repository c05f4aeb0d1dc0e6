package service_test

import (
	"context"
	"testing"

	"github.com/monokpe/james-ecom/internal/config"
	appErrors "github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
	repoMocks "github.com/monokpe/james-ecom/internal/repositories/mocks"
	service "github.com/monokpe/james-ecom/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (service.ProductService, *repoMocks.MockProductRepository) {
	repo := repoMocks.NewMockProductRepository(t)

	return service.NewProductService(repo, nil, &config.CacheConfig{}), repo
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Sanitizes Description", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Description == "A solid board" && p.Price.Equal(decimal.NewFromFloat(19.99))
		})).Return(nil)

		product, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
			Name:        "Mechanical Keyboard",
			Description: `A solid board<script>alert("x")</script>`,
			Price:       19.99,
			CategoryID:  1,
			AttributeID: 1,
		})

		require.NoError(t, err)
		assert.NotContains(t, product.Description, "<script>")
	})

	t.Run("Rounds Price To Cents", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("CreateProduct", mock.Anything, mock.Anything).Return(nil)

		product, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
			Name:        "USB Cable",
			Price:       4.999,
			CategoryID:  1,
			AttributeID: 1,
		})

		require.NoError(t, err)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(5.00)), "price was %s", product.Price)
	})

	t.Run("Attaches Tags By ID", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return len(p.Tags) == 2 && p.Tags[0].ID == 3 && p.Tags[1].ID == 7
		})).Return(nil)

		_, err := svc.CreateProduct(ctx, &models.CreateProductRequest{
			Name:        "USB Cable",
			Price:       4.99,
			CategoryID:  1,
			AttributeID: 1,
			TagIDs:      []int64{3, 7},
		})

		require.NoError(t, err)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("GetProductByID", mock.Anything, int64(1)).
			Return(&models.Product{ID: 1, Name: "Mechanical Keyboard"}, nil)

		product, err := svc.GetProductByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Mechanical Keyboard", product.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("GetProductByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

		_, err := svc.GetProductByID(ctx, 99)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial Update", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("GetProductByID", mock.Anything, int64(1)).Return(&models.Product{
			ID:         1,
			Name:       "Mechanical Keyboard",
			Price:      decimal.NewFromFloat(19.99),
			StockLevel: 42,
		}, nil)

		newPrice := 24.99
		repo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			// Untouched fields survive, and stock never changes here.
			return p.Name == "Mechanical Keyboard" &&
				p.Price.Equal(decimal.NewFromFloat(24.99)) &&
				p.StockLevel == 42
		})).Return(nil)

		product, err := svc.UpdateProduct(ctx, 1, &models.UpdateProductRequest{Price: &newPrice})

		require.NoError(t, err)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(24.99)))
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("GetProductByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound)

		name := "Renamed"
		_, err := svc.UpdateProduct(ctx, 99, &models.UpdateProductRequest{Name: &name})

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("DeleteProduct", mock.Anything, int64(1)).Return(nil)

		assert.NoError(t, svc.DeleteProduct(ctx, 1))
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, repo := newProductService(t)

		repo.On("DeleteProduct", mock.Anything, int64(99)).Return(repository.ErrNotFound)

		err := svc.DeleteProduct(ctx, 99)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
