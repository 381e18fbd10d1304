package config

import (
	"fmt"
	"strings"
)

// DevelopmentJWTSecret signs tokens when JWT_SECRET is unset outside production.
const DevelopmentJWTSecret = "escolhe-pra-mim-development-secret-change-me"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be > 0")
	}

	if err := c.Auth.validate(c.IsProduction()); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.TMDB.validate(); err != nil {
		return fmt.Errorf("tmdb: %w", err)
	}

	if c.RateLimit.WindowMs <= 0 || c.RateLimit.Max <= 0 {
		return fmt.Errorf("rate_limit: window_ms and max must be > 0 (got %d, %d)", c.RateLimit.WindowMs, c.RateLimit.Max)
	}
	if c.RateLimit.AuthWindow <= 0 || c.RateLimit.AuthMax <= 0 {
		return fmt.Errorf("rate_limit: auth_window and auth_max must be > 0")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AuthConfig) validate(production bool) error {
	if a.JWTSecret == "" {
		if production {
			return fmt.Errorf("jwt_secret is required in production")
		}
		a.JWTSecret = DevelopmentJWTSecret
		a.UsingFallbackSecret = true
	}
	if a.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be > 0 (got %v)", a.TokenTTL)
	}
	if a.PasswordHashCost < 4 || a.PasswordHashCost > 31 {
		return fmt.Errorf("password_hash_cost must be in 4..31 (got %d)", a.PasswordHashCost)
	}
	return nil
}

func (t *TMDBConfig) validate() error {
	if t.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	if t.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be > 0 (got %d)", t.MaxPages)
	}
	if t.ResultLimit <= 0 {
		return fmt.Errorf("result_limit must be > 0 (got %d)", t.ResultLimit)
	}
	if t.MinVoteCount < 0 {
		return fmt.Errorf("min_vote_count must be >= 0 (got %d)", t.MinVoteCount)
	}
	return nil
}
