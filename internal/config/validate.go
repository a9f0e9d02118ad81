package config

import (
	"fmt"
	"net/url"
	"slices"
)

// Storage backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Slide layout policies understood by the assembler.
var layouts = []string{"three-column", "two-column", "fixed"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage.dir is required for the file backend")
		}
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)", BackendFile, BackendPostgres, c.Storage.Backend)
	}

	if err := c.Dictation.validate(); err != nil {
		return fmt.Errorf("dictation: %w", err)
	}

	if u, err := url.Parse(c.Player.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("player.url must be an absolute URL (got %q)", c.Player.URL)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be > 0 (got %d)", c.Upload.MaxBytes)
	}
	if c.Upload.Delimiter == "" {
		return fmt.Errorf("upload.delimiter must not be empty")
	}

	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (d *DictationConfig) validate() error {
	if !slices.Contains(layouts, d.Layout) {
		return fmt.Errorf("layout must be one of %v (got %q)", layouts, d.Layout)
	}
	if d.MaxWordPairs <= 0 {
		return fmt.Errorf("max_word_pairs must be > 0 (got %d)", d.MaxWordPairs)
	}
	return nil
}
