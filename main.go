package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/storefront-poc-v1/client/internal/core"
	"github.com/storefront-poc-v1/client/internal/shop/api"
	"github.com/storefront-poc-v1/client/internal/shop/auth"
	"github.com/storefront-poc-v1/client/internal/shop/catalog"
	"github.com/storefront-poc-v1/client/internal/shop/form"
	"github.com/storefront-poc-v1/client/internal/shop/model"
	"github.com/storefront-poc-v1/client/internal/shop/render"
	"github.com/storefront-poc-v1/client/internal/shop/repo"
	"github.com/storefront-poc-v1/client/internal/shop/session"
	logx "github.com/storefront-poc-v1/client/pkg/logger"
	pkgredis "github.com/storefront-poc-v1/client/pkg/redis"
)

// AppConfig defines all configurable parameters for the storefront client,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Remote API and session storage
	API     model.APIConfig
	Session model.SessionConfig
	Redis   pkgredis.Config

	// Demo flow inputs
	LoginEmail string `envconfig:"DEMO_LOGIN_EMAIL" default:"a@b.com"`
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	storage, cleanup, err := newStorage(cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise session storage")
	}
	defer cleanup()

	sessions := session.NewStore(storage)
	client := api.New(cfg.API)
	authSvc := auth.NewService(client, sessions)
	loader := catalog.NewLoader(client, sessions)
	detailLoader := catalog.NewDetailLoader(client, sessions)
	addForm := form.NewAddProductForm(client)

	// ====================================================
	// Liveness probe
	health := client.Health(ctx)
	fmt.Printf("API health: %s (%s)\n", health.Status, health.Message)

	// Guest browse
	fmt.Println("\n" + render.UserInfo(nil))
	products := browse(ctx, loader)

	// Sign in and browse again with premium pricing applied
	user, exists, err := authSvc.Login(ctx, cfg.LoginEmail)
	switch {
	case err != nil:
		fmt.Println(render.Notify(model.ErrorNotification("an error occurred while verifying the email")))
	case !exists:
		fmt.Println(render.Notify(model.ErrorNotification("the email is not registered or the data is incomplete")))
	default:
		fmt.Println(render.Notify(model.SuccessNotification("signed in successfully")))
		fmt.Println(render.UserInfo(user))
		products = browse(ctx, loader)
	}

	// Detail view for the first listed product
	if len(products) > 0 {
		details, err := detailLoader.Load(ctx, products[0].ID)
		if err != nil {
			fmt.Println(render.Notify(model.ErrorNotification("could not load the product details")))
		} else {
			fmt.Println("\n" + render.Details(details))
		}
	}

	// Add a product, then re-fetch the catalog instead of patching it
	newProduct := model.NewProduct{
		Brand:     "Acme",
		ModelName: "Demo-1",
		Color:     "black",
		Stock:     5,
		Price:     199.99,
	}
	if err := addForm.Submit(ctx, newProduct); err != nil {
		fmt.Println(render.Notify(model.ErrorNotification("could not create the product")))
	} else {
		fmt.Println(render.Notify(model.SuccessNotification("product created")))
		browse(ctx, loader)
	}

	if err := authSvc.Logout(ctx); err != nil {
		logx.Error().Err(err).Msg("logout failed")
	}
	fmt.Println("\nSigned out.")
}

// browse loads and prints the catalog; failures surface as one transient
// notification and leave whatever was shown before in place.
func browse(ctx context.Context, loader *catalog.Loader) []model.Product {
	products, err := loader.Load(ctx)
	if err != nil {
		fmt.Println(render.Notify(model.ErrorNotification("could not load the products, please try again")))
		return nil
	}
	fmt.Println("\n" + render.Catalog(products))
	return products
}

func newStorage(cfg AppConfig) (session.Storage, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := cfg.Redis.New()
		if err != nil {
			return nil, nil, err
		}
		return repo.NewRedisSessionStorage(rdb), func() { rdb.Close() }, nil
	default:
		store, err := repo.NewSQLiteSessionStorage(cfg.Session.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
}
