// Package pricing holds the discount rules shared by the catalog listing
// and the product detail view.
//
// The two views historically applied different rules and both are kept as
// named constants: the catalog synthesizes a 10% discount for brands the
// user lists verbatim, while the detail view falls back to a 20% discount
// and matches brands case-insensitively. See DESIGN.md for the decision to
// preserve the drift instead of unifying it.
package pricing

import (
	"math"
	"strings"

	"github.com/storefront-poc-v1/client/internal/shop/model"
)

const (
	// CatalogDiscountRate is applied to the base price when the catalog
	// listing synthesizes an offer for a premium brand.
	CatalogDiscountRate = 0.9
	// DetailFallbackRate is applied to the base price in the detail view
	// when the API provides no explicit offer.
	DetailFallbackRate = 0.8
)

// IsPremiumEligible reports whether the user holds a premium entitlement
// for the given product brand. Brand names match case-insensitively. A nil
// user or an empty entitlement list is never eligible.
func IsPremiumEligible(user *model.User, brand string) bool {
	if !user.HasPremiumBrands() {
		return false
	}
	for _, b := range user.PremiumBrands {
		if strings.EqualFold(b, brand) {
			return true
		}
	}
	return false
}

// EffectivePrice returns the price to display: the special price when the
// user is eligible, an offer exists and it sits strictly below the base
// price; the base price otherwise. The result never exceeds price.
func EffectivePrice(price, specialPrice float64, eligible bool) float64 {
	if eligible && specialPrice > 0 && specialPrice < price {
		return specialPrice
	}
	return price
}

// ApplyDiscounts maps every product whose brand appears verbatim in
// premiumBrands to a copy carrying a synthesized special price of
// Price * CatalogDiscountRate. Products outside the list pass through
// unchanged. The input slice is not mutated and ordering is preserved.
//
// Note the membership test is case-sensitive, unlike IsPremiumEligible;
// this mirrors the catalog listing's observed behavior.
func ApplyDiscounts(products []model.Product, premiumBrands []string) []model.Product {
	if len(premiumBrands) == 0 || len(products) == 0 {
		return products
	}

	branded := make(map[string]struct{}, len(premiumBrands))
	for _, b := range premiumBrands {
		branded[b] = struct{}{}
	}

	out := make([]model.Product, len(products))
	for i, p := range products {
		if _, ok := branded[p.Brand]; ok {
			p.SpecialPrice = p.Price * CatalogDiscountRate
		}
		out[i] = p
	}
	return out
}

// DetailSpecialPrice derives the offer price for the detail view: the
// API-provided special price, or the fallback synthesis when absent.
func DetailSpecialPrice(details *model.ProductDetails) float64 {
	if details.HasSpecialPrice() {
		return details.SpecialPrice
	}
	return details.Price * DetailFallbackRate
}

// Round2 rounds to at most two decimal places, half away from zero.
// Display-only; stored prices are never rounded.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
