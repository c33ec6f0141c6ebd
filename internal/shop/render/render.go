// Package render turns display-ready data into plain text lines. It is the
// only place that knows how prices, badges and notifications look; nothing
// here reaches back into loaders or storage.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/storefront-poc-v1/client/internal/shop/catalog"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	"github.com/storefront-poc-v1/client/internal/shop/pricing"
)

// CatalogLine renders one listing row. An offer strictly below the base
// price is shown next to it; otherwise just the base price.
func CatalogLine(p model.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s) - stock %d - ", p.Brand, p.ModelName, p.Color, p.Stock)

	if p.HasSpecialPrice() && p.SpecialPrice < p.Price {
		fmt.Fprintf(&b, "$%.2f now $%.2f (offer)", pricing.Round2(p.Price), pricing.Round2(p.SpecialPrice))
	} else {
		fmt.Fprintf(&b, "$%.2f", pricing.Round2(p.Price))
	}
	return b.String()
}

// Catalog renders the whole listing, one product per line.
func Catalog(products []model.Product) string {
	if len(products) == 0 {
		return "No products found."
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, CatalogLine(p))
	}
	return strings.Join(lines, "\n")
}

// UserInfo renders the signed-in header: email plus premium brands when
// the user has any. A nil user renders as guest.
func UserInfo(u *model.User) string {
	if u == nil {
		return "Browsing as guest"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User: %s", u.Email)
	if u.HasPremiumBrands() {
		fmt.Fprintf(&b, "\nPremium brands: %s", strings.Join(u.PremiumBrands, ", "))
	}
	return b.String()
}

// Details renders the detail view block: title with PREMIUM badge, price
// line with the offer when one applies, then the remaining fields.
// Specifications print in key order for stable output.
func Details(d *catalog.PricedDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s", d.Brand, d.ModelName)
	if d.Premium {
		b.WriteString(" [PREMIUM]")
	}
	b.WriteString("\n")

	if d.Discounted {
		fmt.Fprintf(&b, "Price: $%.2f now $%.2f (offer)\n", d.DisplayBasePrice, d.DisplayPrice)
	} else {
		fmt.Fprintf(&b, "Price: $%.2f\n", d.DisplayPrice)
	}

	fmt.Fprintf(&b, "Color: %s\n", d.Color)
	fmt.Fprintf(&b, "Stock: %d units", d.Stock)

	if d.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", d.Description)
	}
	if d.Category != "" {
		fmt.Fprintf(&b, "\nCategory: %s", d.Category)
	}
	if len(d.Specifications) > 0 {
		b.WriteString("\nSpecifications:")
		keys := make([]string, 0, len(d.Specifications))
		for k := range d.Specifications {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %v", k, d.Specifications[k])
		}
	}
	return b.String()
}

// Notify renders a transient notification line.
func Notify(n model.Notification) string {
	if n.Kind == model.NotifySuccess {
		return "✅ " + n.Message
	}
	return "❌ " + n.Message
}
