package service

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/errors"
	"github.com/monokpe/james-ecom/internal/models"
	repository "github.com/monokpe/james-ecom/internal/repositories"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	GetAddressByID(ctx context.Context, userID uuid.UUID, id int64) (*models.Address, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, id int64, req *models.CreateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		UserID:       userID,
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

func (s *addressService) GetAddressByID(ctx context.Context, userID uuid.UUID, id int64) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, userID, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Address not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch address").WithError(err)
	}

	return address, nil
}

// UpdateAddress replaces every field of an existing address. Ownership is
// enforced by scoping the lookup to the caller's user id.
func (s *addressService) UpdateAddress(ctx context.Context, userID uuid.UUID, id int64, req *models.CreateAddressRequest) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, userID, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Address not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch address").WithError(err)
	}

	address.Name = req.Name
	address.AddressLine1 = req.AddressLine1
	address.AddressLine2 = req.AddressLine2
	address.City = req.City
	address.State = req.State
	address.ZipCode = req.ZipCode
	address.Country = req.Country

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to update address").WithError(err)
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error {

	if err := s.repo.DeleteAddress(ctx, userID, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Address not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {

	addresses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	return addresses, nil
}
