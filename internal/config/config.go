package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	AppEnv    string          `yaml:"app_env" env:"APP_ENV" env-default:"development"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	TMDB      TMDBConfig      `yaml:"tmdb"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN wins over the individual DB_* parts when set.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	Host            string        `yaml:"host"               env:"DB_HOST"                     env-default:"localhost"`
	Port            int           `yaml:"port"               env:"DB_PORT"                     env-default:"5432"`
	User            string        `yaml:"user"               env:"DB_USER"                     env-default:"root"`
	Password        string        `yaml:"password"           env:"DB_PASSWORD"`
	Name            string        `yaml:"name"               env:"DB_NAME"                     env-default:"escolher_pra_mim"`
	SSLMode         string        `yaml:"ssl_mode"           env:"DB_SSL_MODE"                 env-default:"disable"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"20"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DB_AUTO_MIGRATE"             env-default:"true"`
}

// ConnString returns the DSN, assembling it from parts when DSN is empty.
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// AuthConfig holds password hashing and token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"JWT_SECRET"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"JWT_ISSUER"  env-default:"escolhe-pra-mim"`
	TokenTTL         time.Duration `yaml:"token_ttl"          env:"JWT_TTL"     env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"BCRYPT_COST" env-default:"10"`

	// UsingFallbackSecret is set by Validate when JWT_SECRET was empty
	// outside production and the development secret was substituted.
	UsingFallbackSecret bool `yaml:"-" env:"-"`
}

// TMDBConfig holds catalog API settings. An empty APIKey switches
// discovery to the bundled mock catalog.
type TMDBConfig struct {
	APIKey        string        `yaml:"api_key"         env:"TMDB_API_KEY"`
	BaseURL       string        `yaml:"base_url"        env:"TMDB_BASE_URL"        env-default:"https://api.themoviedb.org/3"`
	ImageBaseURL  string        `yaml:"image_base_url"  env:"TMDB_IMAGE_BASE_URL"  env-default:"https://image.tmdb.org/t/p"`
	Language      string        `yaml:"language"        env:"TMDB_LANGUAGE"        env-default:"pt-BR"`
	Region        string        `yaml:"region"          env:"TMDB_REGION"          env-default:"BR"`
	Timeout       time.Duration `yaml:"timeout"         env:"TMDB_TIMEOUT"         env-default:"10s"`
	MaxPages      int           `yaml:"max_pages"       env:"TMDB_MAX_PAGES"       env-default:"50"`
	ResultLimit   int           `yaml:"result_limit"    env:"TMDB_RESULT_LIMIT"    env-default:"10"`
	MinVoteCount  int           `yaml:"min_vote_count"  env:"TMDB_MIN_VOTE_COUNT"  env-default:"50"`
	GenreCacheTTL time.Duration `yaml:"genre_cache_ttl" env:"TMDB_GENRE_CACHE_TTL" env-default:"6h"`
}

// Enabled reports whether a real catalog API key is configured.
func (t TMDBConfig) Enabled() bool {
	return strings.TrimSpace(t.APIKey) != ""
}

// RateLimitConfig holds the per-IP limits for the catalog and auth routes.
type RateLimitConfig struct {
	WindowMs   int           `yaml:"window_ms"   env:"RATE_LIMIT_WINDOW_MS"   env-default:"60000"`
	Max        int           `yaml:"max"         env:"RATE_LIMIT_MAX"         env-default:"60"`
	AuthWindow time.Duration `yaml:"auth_window" env:"AUTH_RATE_LIMIT_WINDOW" env-default:"15m"`
	AuthMax    int           `yaml:"auth_max"    env:"AUTH_RATE_LIMIT_MAX"    env-default:"100"`
}

// Window returns WindowMs as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowMs) * time.Millisecond
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
