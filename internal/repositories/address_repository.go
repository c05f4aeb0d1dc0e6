package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/monokpe/james-ecom/internal/models"
	"github.com/monokpe/james-ecom/internal/utils"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	GetAddressByID(ctx context.Context, userID uuid.UUID, id int64) (*models.Address, error)
	UpdateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
}

type addressRepository struct {
	DB *sql.DB
}

func NewAddressRepo(db *sql.DB) AddressRepository {
	return &addressRepository{DB: db}
}

func (r *addressRepository) CreateAddress(ctx context.Context, address *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO addresses (user_id, name, address_line_1, address_line_2, city, state, zip_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, address.UserID, address.Name, address.AddressLine1, address.AddressLine2,
		address.City, address.State, address.ZipCode, address.Country).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	return nil
}

func (r *addressRepository) GetAddressByID(ctx context.Context, userID uuid.UUID, id int64) (*models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	address := &models.Address{ID: id, UserID: userID}

	query := `
		SELECT name, address_line_1, address_line_2, city, state, zip_code, country, created_at, updated_at
		FROM addresses
		WHERE id = $1 AND user_id = $2
	`

	err := r.DB.QueryRowContext(dbCtx, query, id, userID).Scan(&address.Name, &address.AddressLine1, &address.AddressLine2,
		&address.City, &address.State, &address.ZipCode, &address.Country, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return address, nil
}

func (r *addressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE addresses SET name = $1, address_line_1 = $2, address_line_2 = $3, city = $4, state = $5, zip_code = $6, country = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, address.Name, address.AddressLine1, address.AddressLine2, address.City,
		address.State, address.ZipCode, address.Country, address.ID, address.UserID).Scan(&address.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update address: %w", err)
	}

	return nil
}

func (r *addressRepository) DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, address_line_1, address_line_2, city, state, zip_code, country, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	defer rows.Close()

	var addresses []models.Address

	for rows.Next() {

		address := models.Address{UserID: userID}

		err := rows.Scan(&address.ID, &address.Name, &address.AddressLine1, &address.AddressLine2,
			&address.City, &address.State, &address.ZipCode, &address.Country, &address.CreatedAt, &address.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}

		addresses = append(addresses, address)
	}

	return addresses, rows.Err()
}
