package config

import (
	"os"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeConfig wraps the payment gateway. It is a pure pass-through: no
// currency handling beyond integer-cents conversion happens locally.
type StripeConfig struct{}

func NewStripeConfig() *StripeConfig {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeConfig{}
}

// CreatePaymentIntent asks the gateway for a client-usable authorization
// handle for the given amount in cents.
func (sc *StripeConfig) CreatePaymentIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}

	return pi.ClientSecret, nil
}
