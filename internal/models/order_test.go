package models_test

import (
	"testing"

	"github.com/monokpe/james-ecom/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {

	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{"Pending Can Be Cancelled", models.OrderStatusPending, models.OrderStatusCancelled, true},
		{"Pending Cannot Skip To Shipped", models.OrderStatusPending, models.OrderStatusShipped, false},
		{"Pending To Processing Reserved For Payment", models.OrderStatusPending, models.OrderStatusProcessing, false},
		{"Processing Can Ship", models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{"Processing Can Be Cancelled", models.OrderStatusProcessing, models.OrderStatusCancelled, true},
		{"Shipped Can Be Delivered", models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{"Shipped Cannot Be Cancelled", models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{"Delivered Is Terminal", models.OrderStatusDelivered, models.OrderStatusCancelled, false},
		{"Cancelled Is Terminal", models.OrderStatusCancelled, models.OrderStatusPending, false},
		{"No Self Transition", models.OrderStatusProcessing, models.OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}
