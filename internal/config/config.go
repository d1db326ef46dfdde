package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppMode                          string `mapstructure:"APP_MODE"` // "local" or "production"
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`
	JWTSecret                        string `mapstructure:"JWT_SECRET"`
	JWTExpire                        string `mapstructure:"JWT_EXPIRE"`
	JWTRefreshSecret                 string `mapstructure:"JWT_REFRESH_SECRET"`
	JWTRefreshExpire                 string `mapstructure:"JWT_REFRESH_EXPIRE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	StripeSecretKey                  string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret              string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
}

// IsLocal reports whether the backend runs against the in-memory store
// instead of Cloud Firestore.
func (c *Config) IsLocal() bool {
	return strings.EqualFold(c.AppMode, "local")
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("APP_MODE", "local")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CLIENT_URL", "http://localhost:5173")
	viper.SetDefault("JWT_EXPIRE", "168h")
	viper.SetDefault("JWT_REFRESH_EXPIRE", "720h")

	// Bind environment variables
	viper.BindEnv("APP_MODE")
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("JWT_EXPIRE")
	viper.BindEnv("JWT_REFRESH_SECRET")
	viper.BindEnv("JWT_REFRESH_EXPIRE")
	viper.BindEnv("FIREBASE_PROJECT_ID")
	viper.BindEnv("GOOGLE_APPLICATION_CREDENTIALS")
	viper.BindEnv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64")
	viper.BindEnv("STRIPE_SECRET_KEY")
	viper.BindEnv("STRIPE_WEBHOOK_SECRET")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	// Validate required fields. Stripe keys are optional so that local mode
	// works without a Stripe account; payment endpoints reject requests when
	// the keys are missing.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.JWTRefreshSecret == "" {
		return nil, errors.New("JWT_REFRESH_SECRET is required")
	}
	if !cfg.IsLocal() {
		if cfg.FirebaseProjectID == "" {
			return nil, errors.New("FIREBASE_PROJECT_ID is required in production mode")
		}
		if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
			return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is required in production mode")
		}
	}

	return &cfg, nil
}
