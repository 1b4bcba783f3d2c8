// Package payment is a thin wrapper around Stripe card tokenization.
// Only the resulting payment reference is stored on the order; charge
// settlement happens outside this codebase.
package payment

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

var ErrMissingCard = errors.New("card token is required")

type Service interface {
	// Charge records a payment for the given amount and returns the
	// provider reference to store on the order.
	Charge(cardToken string, amount float64, description string) (string, error)
}

type service struct{}

func NewService() Service {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &service{}
}

func (s *service) Charge(cardToken string, amount float64, description string) (string, error) {
	if cardToken == "" {
		return "", ErrMissingCard
	}

	// Stripe test tokens short-circuit to a synthetic reference so local
	// environments run without a Stripe account.
	if strings.HasPrefix(cardToken, "tok_") && stripe.Key == "" {
		return fmt.Sprintf("test_%s", cardToken), nil
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(int64(amount * 100)),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(description),
	}
	if err := params.SetSource(cardToken); err != nil {
		return "", err
	}

	ch, err := charge.New(params)
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}
