package auth

import (
	"fmt"
	"time"

	"showcase-portal-backend/internal/config"
)

// AuthConfig holds the token signing settings
type AuthConfig struct {
	JWTSecret     string
	Issuer        string
	TokenLifetime time.Duration
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
		TokenLifetime: cfg.JWTLifetime,
	}
}

// ValidateConfig validates the auth configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	return nil
}
