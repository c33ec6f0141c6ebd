// Package form handles the add-product form: field validation before
// submission and a guard against overlapping submits.
package form

import (
	"context"
	"sync"

	errx "github.com/storefront-poc-v1/client/internal/core/error"
	"github.com/storefront-poc-v1/client/internal/shop/api"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
)

// Validate applies the form's field rules: the text fields are required
// and the numeric fields must not be negative. The first violation wins.
func Validate(p model.NewProduct) error {
	switch {
	case p.Brand == "":
		return errx.Validation("brand", "brand is required")
	case p.ModelName == "":
		return errx.Validation("modelName", "model name is required")
	case p.Color == "":
		return errx.Validation("color", "color is required")
	case p.Stock < 0:
		return errx.Validation("stock", "stock cannot be negative")
	case p.Price < 0:
		return errx.Validation("price", "price cannot be negative")
	}
	return nil
}

// AddProductForm submits new products. While a submission is in flight any
// further Submit call is rejected, mirroring a disabled submit button.
type AddProductForm struct {
	api *api.Client

	mu         sync.Mutex
	submitting bool
}

func NewAddProductForm(client *api.Client) *AddProductForm {
	return &AddProductForm{api: client}
}

// Submitting reports whether a submission is currently in flight.
func (f *AddProductForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates and posts the product. The caller should re-fetch the
// catalog after a successful submit rather than patching its list.
func (f *AddProductForm) Submit(ctx context.Context, p model.NewProduct) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return errx.Validation("form", "a submission is already in progress")
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := Validate(p); err != nil {
		return err
	}

	if err := f.api.CreateProduct(ctx, p); err != nil {
		logx.Error().Err(err).Str("brand", p.Brand).Str("model", p.ModelName).Msg("failed to create product")
		return err
	}

	logx.Info().Str("brand", p.Brand).Str("model", p.ModelName).Msg("product created")
	return nil
}
