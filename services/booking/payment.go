package booking

import (
	"context"
	"math"
	"time"

	"freshfold/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates Stripe payment intents for submitted bookings. The
// checkout page only needs the client secret; capture and webhooks stay with
// Stripe.
type PaymentService struct {
	logger *zap.Logger
}

func NewPaymentService(logger *zap.Logger) *PaymentService {
	return &PaymentService{logger: logger}
}

// CreateIntent builds a payment intent for the given amount in GBP.
func (s *PaymentService) CreateIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntentResponse, error) {
	if req.Amount <= 0 {
		return nil, &ValidationError{Fields: []string{"amount"}}
	}
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyGBP)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.CustomerID != "" {
		params.AddMetadata("externalCustomerID", req.CustomerID)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		s.logger.Error("payment intent creation failed", zap.Error(err))
		return nil, &RemoteRequestError{Op: "paymentIntent", Err: err}
	}

	s.logger.Info("payment intent created",
		zap.String("intentID", intent.ID), zap.Float64("amount", req.Amount))

	return &models.PaymentIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       req.Amount,
		Currency:     currency,
		Status:       string(intent.Status),
		CreatedAt:    time.Now(),
	}, nil
}
