package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type MockClient struct {
	mock.Mock
}

func NewMockClient(t *testing.T) *MockClient {
	m := &MockClient{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockClient) CreatePaymentIntent(amountMinorUnits int64, currency string, description string) (*stripe.PaymentIntent, error) {
	args := m.Called(amountMinorUnits, currency, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}

func (m *MockClient) ConfirmPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error) {
	args := m.Called(paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}
