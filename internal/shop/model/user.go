package model

// User identifies a signed-in session. PremiumBrands lists the brand names
// the user holds premium entitlements for; matching against product brands
// is case-insensitive in the detail view (see pricing.IsPremiumEligible).
type User struct {
	ID            string   `json:"_id,omitempty"`
	Email         string   `json:"email"`
	Name          string   `json:"name,omitempty"`
	PremiumBrands []string `json:"premium_brands,omitempty"`
}

// HasPremiumBrands reports whether the user carries at least one premium
// brand entitlement.
func (u *User) HasPremiumBrands() bool {
	return u != nil && len(u.PremiumBrands) > 0
}
