package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client abstracts the payment processor so handlers can be tested without
// hitting Stripe.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type client struct {
	apiKey string
}

// NewClient creates a Stripe-backed payment client.
func NewClient(apiKey string) Client {
	stripe.Key = apiKey
	return &client{apiKey: apiKey}
}

// CreatePaymentIntent requests a card-only USD payment intent for the given
// amount in minor units and returns the client secret the frontend needs to
// confirm the payment.
func (c *client) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: []*string{
			stripe.String("card"),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

// MinorUnits converts a decimal price into integer minor units, e.g. 20.00
// USD becomes 2000 cents.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}
