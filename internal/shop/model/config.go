package model

// ================ Config ================

// APIConfig locates the remote storefront API.
type APIConfig struct {
	BaseURL string `envconfig:"API_BASE_URL" required:"true"`
	// TimeoutSeconds bounds each request; 0 disables the client timeout,
	// matching the original client's bare fetch behavior.
	TimeoutSeconds int `envconfig:"API_TIMEOUT_SECONDS" default:"0"`
}

// SessionConfig selects and configures the durable session storage backend.
type SessionConfig struct {
	// Backend is "sqlite" for a local file store or "redis" for a shared one.
	Backend string `envconfig:"SESSION_BACKEND" default:"sqlite"`
	DBPath  string `envconfig:"SESSION_DB_PATH" default:"./session.db"`
}
