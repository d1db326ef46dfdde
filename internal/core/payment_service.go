package core

import (
	"context"
	"encoding/json"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"

	"pitlane-backend-go/internal/config"
)

// paymentService implements PaymentService against Stripe. When no secret
// key is configured every operation returns ErrPaymentNotConfigured, so a
// local setup without Stripe credentials still boots.
type paymentService struct {
	secretKey     string
	webhookSecret string
	logger        *zap.Logger
}

// NewPaymentService creates a PaymentService. The Stripe client key is
// process-global, matching how the official SDK is designed.
func NewPaymentService(cfg *config.Config, logger *zap.Logger) PaymentService {
	if cfg.StripeSecretKey != "" {
		stripe.Key = cfg.StripeSecretKey
	}
	return &paymentService{
		secretKey:     cfg.StripeSecretKey,
		webhookSecret: cfg.StripeWebhookSecret,
		logger:        logger,
	}
}

// CreateIntent registers a pending charge with Stripe. The amount comes
// in euros and is converted to cents for the gateway.
func (s *paymentService) CreateIntent(ctx context.Context, userID string, amount float64) (string, error) {
	if s.secretKey == "" {
		return "", ErrPaymentNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyEUR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("userId", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// HandleWebhook verifies the event signature and processes the events we
// care about. Unknown event types are acknowledged and ignored.
func (s *paymentService) HandleWebhook(payload []byte, signature string) error {
	if s.webhookSecret == "" {
		return ErrPaymentNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return ErrWebhookSignature
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return err
		}
		s.logger.Info("payment succeeded",
			zap.String("intentId", intent.ID),
			zap.String("userId", intent.Metadata["userId"]),
			zap.Int64("amount", intent.Amount))
	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return err
		}
		s.logger.Warn("payment failed",
			zap.String("intentId", intent.ID),
			zap.String("userId", intent.Metadata["userId"]))
	default:
		s.logger.Debug("unhandled webhook event", zap.String("type", string(event.Type)))
	}
	return nil
}
