package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records a confirmed charge. Only successful confirmations are
// persisted; the unique constraint on order_id keeps an order to a single
// payment.
type Payment struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Gateway     string          `json:"payment_gateway"`
	Success     bool            `json:"success"`
	ClientToken string          `json:"client_token,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreatePaymentRequest struct {
	OrderID  uuid.UUID `json:"order" validate:"required"`
	Amount   float64   `json:"amount" validate:"required,gt=0"`
	Currency string    `json:"currency" validate:"omitempty,iso4217"`
	Gateway  string    `json:"payment_gateway" validate:"required"`
}

type PaymentResponse struct {
	Payment *Payment `json:"payment"`
	Order   *Order   `json:"order"`
}

type CreatePaymentIntentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,iso4217"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
