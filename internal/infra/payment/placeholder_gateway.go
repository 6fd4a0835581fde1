// Package payment provides the placeholder payment gateway. A real provider
// integration slots in behind the same interface.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultRedirectBaseURL = "https://payments.example.com"

// placeholderGateway implements service.PaymentGateway without calling any
// external provider. It mints an intent ID locally and points the shopper at
// a redirect URL built from configuration.
type placeholderGateway struct {
	redirectBaseURL string
	logger          *slog.Logger
}

// GatewayParams holds dependencies for the payment gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway is the constructor for placeholderGateway.
func NewPaymentGateway(params GatewayParams) service.PaymentGateway {
	baseURL := defaultRedirectBaseURL
	if params.Config.Payment != nil && params.Config.Payment.RedirectBaseURL != "" {
		baseURL = strings.TrimRight(params.Config.Payment.RedirectBaseURL, "/")
	}

	return &placeholderGateway{
		redirectBaseURL: baseURL,
		logger:          params.Logger,
	}
}

// CreateIntent registers a pending payment for the order and returns the
// intent the shopper is redirected to.
func (g *placeholderGateway) CreateIntent(ctx context.Context, order *entity.Order, method string) (*service.PaymentIntent, error) {
	intent := &service.PaymentIntent{
		ID:          fmt.Sprintf("pi_%s", uuid.New()),
		OrderNumber: order.Number,
		Amount:      order.Total,
		RedirectURL: fmt.Sprintf("%s/pay/%s?order=%s", g.redirectBaseURL, method, order.Number),
	}

	g.logger.Info("payment intent created",
		slog.String("intent_id", intent.ID),
		slog.String("order_number", order.Number),
		slog.Int64("amount", order.Total),
	)

	return intent, nil
}

// Module provides the payment FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway),
)
