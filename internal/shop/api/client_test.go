package api_test

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
	"github.com/storefront-poc-v1/client/internal/shop/model"
)

func newClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(model.APIConfig{BaseURL: srv.URL})
}

func TestHealthOK(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	status := client.Health(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "API is running", status.Message)
}

func TestHealthDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := api.New(model.APIConfig{BaseURL: srv.URL})

	status := client.Health(context.Background())
	assert.Equal(t, "error", status.Status)
	assert.Contains(t, status.Message, "error connecting to API")
}

func TestHealthBadStatus(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	status := client.Health(context.Background())
	assert.Equal(t, "error", status.Status)
	assert.Contains(t, status.Message, "503")
}

func TestCheckEmailSuccess(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data": map[string]any{
				"user": map[string]any{"email": "a@b.com", "premium_brands": []string{"Acme"}},
			},
		})
	})

	user, exists, err := client.CheckEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, []string{"Acme"}, user.PremiumBrands)
}

func TestCheckEmailNoMatch(t *testing.T) {
	// An absent user arrives in a 2xx body, not as an error status.
	shapes := []string{
		`{"status":"success","data":{}}`,
		`{"status":"not_found"}`,
		`{}`,
	}

	for _, shape := range shapes {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(shape))
		})

		user, exists, err := client.CheckEmail(context.Background(), "a@b.com")
		require.NoError(t, err, shape)
		assert.False(t, exists, shape)
		assert.Nil(t, user, shape)
	}
}

func TestCheckEmailBadStatus(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, exists, err := client.CheckEmail(context.Background(), "a@b.com")
	require.Error(t, err)
	assert.False(t, exists)
	assert.Equal(t, errx.KindHTTPStatus, errx.KindOf(err))
}

func TestListProductsShapes(t *testing.T) {
	products := []model.Product{
		{ID: "1", Brand: "Acme", ModelName: "X1", Price: 100},
		{ID: "2", Brand: "Other", ModelName: "Y2", Price: 50},
	}
	raw, err := json.Marshal(products)
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", string(raw), 2},
		{"products field", `{"products":` + string(raw) + `}`, 2},
		{"data field", `{"data":` + string(raw) + `}`, 2},
		{"unknown shape", `{"items":[1,2,3]}`, 0},
		{"products not an array", `{"products":"nope"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			got, err := client.ListProducts(context.Background())
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
			if tt.want > 0 {
				assert.Equal(t, products, got)
			}
		})
	}
}

func TestListProductsBadStatus(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)

	var e *errx.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errx.KindHTTPStatus, e.Kind)
	assert.Equal(t, http.StatusBadGateway, e.Status)
}

func TestGetProductShapes(t *testing.T) {
	details := model.ProductDetails{
		Product:     model.Product{ID: "7", Brand: "Acme", ModelName: "X1", Price: 100},
		Description: "desc",
		Category:    "gadgets",
	}
	raw, err := json.Marshal(details)
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{"wrapped in data", `{"data":` + string(raw) + `}`},
		{"bare record", string(raw)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products/7", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			got, err := client.GetProduct(context.Background(), "7")
			require.NoError(t, err)
			assert.Equal(t, &details, got)
		})
	}
}

func TestGetProductErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetProduct(context.Background(), "7")
		assert.Equal(t, errx.KindHTTPStatus, errx.KindOf(err))
	})

	t.Run("garbage body", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})

		_, err := client.GetProduct(context.Background(), "7")
		assert.Equal(t, errx.KindParse, errx.KindOf(err))
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()
		client := api.New(model.APIConfig{BaseURL: srv.URL})

		_, err := client.GetProduct(context.Background(), "7")
		assert.Equal(t, errx.KindNetwork, errx.KindOf(err))
	})
}

func TestCreateProduct(t *testing.T) {
	var received model.NewProduct
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	})

	p := model.NewProduct{Brand: "Acme", ModelName: "X1", Color: "black", Stock: 3, Price: 99.5}
	require.NoError(t, client.CreateProduct(context.Background(), p))
	assert.Equal(t, p, received)
}

func TestCreateProductBadStatus(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	err := client.CreateProduct(context.Background(), model.NewProduct{Brand: "Acme"})
	assert.Equal(t, errx.KindHTTPStatus, errx.KindOf(err))
}

func TestRequestCancellation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProducts(ctx)
	assert.Equal(t, errx.KindNetwork, errx.KindOf(err))
}
