package model

// Product is a catalog entry as served by the remote API.
//
// SpecialPrice follows the wire contract of the API: absent means no offer,
// and the zero value stands in for absent. It may also be synthesized
// locally by the pricing rules (catalog listing and detail view use
// different synthesis rates).
type Product struct {
	ID           string  `json:"_id"`
	Brand        string  `json:"brand"`
	ModelName    string  `json:"modelName"`
	Color        string  `json:"color"`
	Stock        int     `json:"stock"`
	Price        float64 `json:"price"`
	SpecialPrice float64 `json:"specialPrice,omitempty"`
}

// HasSpecialPrice reports whether an offer price is present on the wire.
func (p *Product) HasSpecialPrice() bool {
	return p.SpecialPrice > 0
}

// ProductDetails is the full per-product record returned by the detail
// endpoint. Specifications is free-form key/value data.
type ProductDetails struct {
	Product
	Description    string         `json:"description,omitempty"`
	Category       string         `json:"category,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

// NewProduct is the creation payload for the add-product form.
type NewProduct struct {
	Brand     string  `json:"brand"`
	ModelName string  `json:"modelName"`
	Color     string  `json:"color"`
	Stock     int     `json:"stock"`
	Price     float64 `json:"price"`
}
