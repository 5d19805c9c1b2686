package port

import (
	"context"

	"github.com/MikeRez0/esimhub/internal/core/domain"
)

// ProvisioningGateway places orders with the eSIM fulfillment provider.
// Failures are returned as *domain.ProvisioningError.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type ProvisioningGateway interface {
	CreateOrder(ctx context.Context, bundleCode string, quantity int) (*domain.ProvisioningResult, error)
}

type BundleCatalog interface {
	GetBundleDetails(ctx context.Context, bundleCode string) (*domain.Bundle, error)
}

type PaymentIntents interface {
	CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error)
}
