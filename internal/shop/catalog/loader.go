// Package catalog turns raw API responses into display-ready product data
// by applying the session's premium entitlements through the pricing rules.
package catalog

import (
	"context"

	"github.com/storefront-poc-v1/client/internal/shop/api"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	"github.com/storefront-poc-v1/client/internal/shop/pricing"
	"github.com/storefront-poc-v1/client/internal/shop/session"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

// Loader fetches the product listing and applies the catalog discount rule
// for the signed-in user.
type Loader struct {
	api      *api.Client
	sessions *session.Store
}

func NewLoader(client *api.Client, sessions *session.Store) *Loader {
	return &Loader{api: client, sessions: sessions}
}

// Load fetches the catalog. On failure the error carries the HTTP status
// (see errx) and the caller keeps whatever it was showing before; on
// success the listing comes back with premium-brand offers applied.
// Safe to call again after any mutation; always a full re-fetch.
func (l *Loader) Load(ctx context.Context) ([]model.Product, error) {
	products, err := l.api.ListProducts(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("failed to load catalog")
		return nil, err
	}

	user, ok := l.sessions.Current(ctx)
	if !ok || !user.HasPremiumBrands() {
		return products, nil
	}

	return pricing.ApplyDiscounts(products, user.PremiumBrands), nil
}
