// Package adapters builds the payment gateways enabled by configuration.
package adapters

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/config"
	"github.com/salescode/salescode-payments/internal/adapters/mercadopago"
	"github.com/salescode/salescode-payments/internal/adapters/mock"
	"github.com/salescode/salescode-payments/internal/adapters/stripe"
	"github.com/salescode/salescode-payments/internal/core/domain"
	"github.com/salescode/salescode-payments/internal/core/ports"
)

// BuildGateways returns one adapter per provider whose credentials are
// present. Providers without credentials are skipped.
func BuildGateways(cfg *config.Config, log *zap.Logger) ([]ports.Gateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	baseURL := cfg.Server.BaseURL

	var gateways []ports.Gateway

	if cfg.Stripe.Enabled() {
		gateways = append(gateways, stripe.NewAdapter(stripe.Config{
			SecretKey:      cfg.Stripe.SecretKey,
			PublishableKey: cfg.Stripe.PublishableKey,
			WebhookSecret:  cfg.Stripe.WebhookSecret,
		}, baseURL, log))
		if cfg.Stripe.WebhookSecret == "" {
			log.Warn("STRIPE_WEBHOOK_SECRET not set, Stripe webhooks will be rejected")
		}
	}

	if cfg.MercadoPago.Enabled() {
		mp, err := mercadopago.NewAdapter(mercadopago.Config{
			AccessToken:   cfg.MercadoPago.AccessToken,
			PublicKey:     cfg.MercadoPago.PublicKey,
			WebhookSecret: cfg.MercadoPago.WebhookSecret,
		}, baseURL, log)
		if err != nil {
			return nil, errors.Wrap(err, "build mercadopago gateway")
		}
		gateways = append(gateways, mp)
	}

	if cfg.Mock.Enabled {
		gateways = append(gateways, mock.New(domain.GatewayMock, baseURL, log))
	}

	names := make([]string, 0, len(gateways))
	for _, gw := range gateways {
		names = append(names, gw.Name())
	}
	log.Info("payment gateways configured", zap.Strings("gateways", names))

	return gateways, nil
}
