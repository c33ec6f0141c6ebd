package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/storefront-poc-v1/client/internal/core/error"
	"github.com/storefront-poc-v1/client/internal/shop/api"
	"github.com/storefront-poc-v1/client/internal/shop/catalog"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	"github.com/storefront-poc-v1/client/internal/shop/repo"
	"github.com/storefront-poc-v1/client/internal/shop/session"
)

func newFixture(t *testing.T, handler http.HandlerFunc) (*api.Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.New(model.APIConfig{BaseURL: srv.URL})
	return client, session.NewStore(repo.NewMemorySessionStorage())
}

func TestLoadAppliesPremiumDiscounts(t *testing.T) {
	ctx := context.Background()
	client, sessions := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Product{
			{ID: "1", Brand: "Acme", Price: 100},
			{ID: "2", Brand: "Other", Price: 50},
		})
	})
	require.NoError(t, sessions.Set(ctx, &model.User{Email: "a@b.com", PremiumBrands: []string{"Acme"}}))

	got, err := catalog.NewLoader(client, sessions).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 90.0, got[0].SpecialPrice)
	assert.Zero(t, got[1].SpecialPrice)
}

func TestLoadAsGuest(t *testing.T) {
	client, sessions := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Product{{ID: "1", Brand: "Acme", Price: 100}})
	})

	got, err := catalog.NewLoader(client, sessions).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].SpecialPrice)
}

func TestLoadStatusError(t *testing.T) {
	client, sessions := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := catalog.NewLoader(client, sessions).Load(context.Background())
	require.Error(t, err)

	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errx.KindHTTPStatus, e.Kind)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
}

// After a mutation the loader re-fetches the listing instead of patching
// the previous result in place.
func TestLoadRefetches(t *testing.T) {
	listing := []model.Product{{ID: "1", Brand: "Acme", Price: 100}}
	client, sessions := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listing)
	})
	loader := catalog.NewLoader(client, sessions)

	first, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	listing = append(listing, model.Product{ID: "2", Brand: "Other", Price: 50})

	second, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}
