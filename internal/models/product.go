package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	CategoryID  int64             `json:"category_id"`
	AttributeID int64             `json:"attribute_id"`
	StockLevel  int64             `json:"stock_level"`
	Tags        []Tag             `json:"tags,omitempty"`
	Category    *Category         `json:"category,omitempty"`
	Attribute   *ProductAttribute `json:"attribute,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  int64   `json:"category_id" validate:"required"`
	AttributeID int64   `json:"attribute_id" validate:"required"`
	StockLevel  int64   `json:"stock_level" validate:"gte=0"`
	TagIDs      []int64 `json:"tag_ids,omitempty"`
}

// UpdateProductRequest is a typed patch; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID  *int64   `json:"category_id,omitempty"`
	AttributeID *int64   `json:"attribute_id,omitempty"`
	TagIDs      []int64  `json:"tag_ids,omitempty"`
}

type ListProductsQuery struct {
	Search   string
	OrderBy  string
	Page     int
	PageSize int
}
