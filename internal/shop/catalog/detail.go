package catalog

import (
	"context"

	"github.com/storefront-poc-v1/client/internal/shop/api"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	"github.com/storefront-poc-v1/client/internal/shop/pricing"
	"github.com/storefront-poc-v1/client/internal/shop/session"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

// PricedDetails is a product record prepared for the detail view: premium
// eligibility resolved, offer derived and prices rounded for display.
type PricedDetails struct {
	model.ProductDetails

	// Premium is true when the signed-in user holds an entitlement for
	// this product's brand (case-insensitive match).
	Premium bool
	// Discounted is true when an offer strictly below the base price is
	// shown to this user.
	Discounted bool
	// DisplayPrice is the rounded effective price.
	DisplayPrice float64
	// DisplayBasePrice is the rounded base price, shown struck through
	// next to an offer.
	DisplayBasePrice float64
}

// DetailLoader fetches a single product and derives its pricing
// presentation. Its discount rule differs from the catalog listing's: when
// the API sends no offer it falls back to pricing.DetailFallbackRate, and
// brand matching is case-insensitive.
type DetailLoader struct {
	api      *api.Client
	sessions *session.Store
}

func NewDetailLoader(client *api.Client, sessions *session.Store) *DetailLoader {
	return &DetailLoader{api: client, sessions: sessions}
}

// Load fetches the record behind id and resolves what this user should
// see. Failures keep their kind and status for the caller to report once.
func (l *DetailLoader) Load(ctx context.Context, id string) (*PricedDetails, error) {
	details, err := l.api.GetProduct(ctx, id)
	if err != nil {
		logx.Error().Err(err).Str("productID", id).Msg("failed to load product details")
		return nil, err
	}

	user, _ := l.sessions.Current(ctx)
	eligible := pricing.IsPremiumEligible(user, details.Brand)
	special := pricing.DetailSpecialPrice(details)
	effective := pricing.EffectivePrice(details.Price, special, eligible)

	return &PricedDetails{
		ProductDetails:   *details,
		Premium:          eligible,
		Discounted:       effective < details.Price,
		DisplayPrice:     pricing.Round2(effective),
		DisplayBasePrice: pricing.Round2(details.Price),
	}, nil
}
