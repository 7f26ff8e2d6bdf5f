package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

const (
	// DefaultPaymentAmount is charged, in cents, when no price is given.
	DefaultPaymentAmount int64 = 60
	// MaxPaymentAmount is the largest charge Stripe accepts in usd, in cents.
	MaxPaymentAmount int64 = 99999999
	PaymentCurrency        = "usd"
)

// PaymentAmount converts a price in dollars to cents, truncating. A missing
// price, or one that truncates to zero, yields DefaultPaymentAmount. Negative,
// non-finite and over-limit prices fail with ErrInvalidPrice.
func PaymentAmount(price *float64) (int64, error) {
	if price == nil {
		return DefaultPaymentAmount, nil
	}
	cents := *price * 100
	if math.IsNaN(cents) || cents < 0 || cents >= float64(MaxPaymentAmount+1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, *price)
	}
	amount := int64(cents)
	if amount == 0 {
		return DefaultPaymentAmount, nil
	}
	return amount, nil
}

// StripeGateway creates PaymentIntents. Calls are never retried.
type StripeGateway struct {
	intents *paymentintent.Client
}

// NewStripeGateway builds a gateway for secretKey. baseURL overrides the
// Stripe API host and is empty in production.
func NewStripeGateway(secretKey, baseURL string) *StripeGateway {
	config := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if baseURL != "" {
		config.URL = stripe.String(baseURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, config)
	return &StripeGateway{intents: &paymentintent.Client{B: backend, Key: secretKey}}
}

// CreatePaymentIntent returns the client secret the front end uses to
// confirm the payment.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		log.Printf("Failed to create payment intent for %d %s: %v", amount, currency, err)
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return intent.ClientSecret, nil
}
