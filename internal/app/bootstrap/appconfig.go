// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings (ports, TLS, logging); AppConfig is
// everything specific to this service.
//
// All values are read once at process start and never mutated
// afterwards; handlers only ever see copies.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer-token configuration
	JWTSecret   string        // HS256 signing secret (must be strong in production)
	TokenExpiry time.Duration // fixed lifetime of issued tokens

	// BaseURL is the public frontend base used to build QR join links
	// (e.g., "https://huddle.example.com" or "http://localhost:3000").
	BaseURL string

	// AllowedOrigins is the cross-origin caller list for CORS,
	// comma-separated in config.
	AllowedOrigins []string
}
