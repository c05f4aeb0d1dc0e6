package models

import (
	"time"

	"github.com/google/uuid"
)

type MovementType string

const (
	MovementAddition    MovementType = "addition"
	MovementSubtraction MovementType = "subtraction"
)

// StockMovement is an immutable ledger entry. A movement row only ever
// exists together with its effect on the product's stock level; both are
// written in the same transaction.
type StockMovement struct {
	ID           uuid.UUID    `json:"id"`
	ProductID    int64        `json:"product_id"`
	MovementType MovementType `json:"movement_type"`
	Quantity     int64        `json:"quantity"`
	UserID       uuid.UUID    `json:"user_id"`
	CreatedAt    time.Time    `json:"created_at"`
}

type CreateStockMovementRequest struct {
	ProductID    int64        `json:"product" validate:"required"`
	MovementType MovementType `json:"movement_type" validate:"required,oneof=addition subtraction"`
	Quantity     int64        `json:"quantity" validate:"required,gt=0"`
}

type StockMovementResponse struct {
	Movement   *StockMovement `json:"movement"`
	StockLevel int64          `json:"stock_level"`
}
