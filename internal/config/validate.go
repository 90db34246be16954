package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Inventory.ImportChunkSize <= 0 {
		return fmt.Errorf("inventory.import_chunk_size must be > 0 (got %d)", c.Inventory.ImportChunkSize)
	}
	if c.Inventory.MaxRecordsPerWarehouse <= 0 {
		return fmt.Errorf("inventory.max_records_per_warehouse must be > 0 (got %d)", c.Inventory.MaxRecordsPerWarehouse)
	}
	if c.Catalog.ImportChunkSize <= 0 || c.Catalog.ImportChunkSize > 500 {
		return fmt.Errorf("catalog.import_chunk_size must be in 1..500 (got %d)", c.Catalog.ImportChunkSize)
	}

	if c.Assistant.Enabled() && c.Assistant.MaxTokens <= 0 {
		return fmt.Errorf("assistant.max_tokens must be > 0 (got %d)", c.Assistant.MaxTokens)
	}

	return nil
}
