package stripe

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client is the payment gateway boundary. The order subsystem only ever
// talks to this interface; a gateway failure must leave orders untouched.
type Client interface {
	CreatePaymentIntent(amountMinorUnits int64, currency string, description string) (*stripe.PaymentIntent, error)
	ConfirmPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error)
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// CreatePaymentIntent authorizes a charge and returns the intent carrying
// the client secret the frontend needs to complete it.
func (s *stripeClient) CreatePaymentIntent(amountMinorUnits int64, currency string, description string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		PaymentMethodTypes: []*string{
			stripe.String("card"),
		},
	}

	if description != "" {
		params.Description = stripe.String(description)
	}

	return paymentintent.New(params)
}

func (s *stripeClient) ConfirmPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error) {
	return paymentintent.Confirm(paymentIntentID, nil)
}
