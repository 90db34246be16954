package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Inventory InventoryConfig `yaml:"inventory"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Assistant AssistantConfig `yaml:"assistant"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// Generous because the resolve endpoint fires on every keystroke.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token settings. Warehouse tokens are long-lived:
// there are no per-user accounts, a token just names the warehouse a
// device may read and write.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"modskl"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"8760h"`
}

// InventoryConfig holds personal inventory settings.
type InventoryConfig struct {
	MaxRecordsPerWarehouse int `yaml:"max_records_per_warehouse" env:"INVENTORY_MAX_RECORDS"      env-default:"10000"`
	ImportChunkSize        int `yaml:"import_chunk_size"         env:"INVENTORY_IMPORT_CHUNK_SIZE" env-default:"100"`
	ExportMaxRecords       int `yaml:"export_max_records"        env:"INVENTORY_EXPORT_MAX_RECORDS" env-default:"10000"`
}

// CatalogConfig holds shared catalog settings.
type CatalogConfig struct {
	// PublishEnabled controls the crowdsourcing hook that copies newly
	// saved paints into the shared catalog.
	PublishEnabled  bool `yaml:"publish_enabled"   env:"CATALOG_PUBLISH_ENABLED"   env-default:"true"`
	ImportChunkSize int  `yaml:"import_chunk_size" env:"CATALOG_IMPORT_CHUNK_SIZE" env-default:"450"`
	MaxEntries      int  `yaml:"max_entries"       env:"CATALOG_MAX_ENTRIES"       env-default:"100000"`
}

// AssistantConfig holds LLM assistant settings. With an empty API key
// the assistant endpoints respond 404 and everything else still works.
type AssistantConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ASSISTANT_API_KEY"`
	Model     string        `yaml:"model"      env:"ASSISTANT_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"ASSISTANT_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"ASSISTANT_TIMEOUT"    env-default:"60s"`
}

// Enabled reports whether the assistant features are configured.
func (c AssistantConfig) Enabled() bool {
	return c.APIKey != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
