package config

import (
	"net/url"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	LLM       LLMConfig       `yaml:"llm"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Dictation DictationConfig `yaml:"dictation"`
	Player    PlayerConfig    `yaml:"player"`
	Upload    UploadConfig    `yaml:"upload"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings for the routes read by the web player.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"https://staging-static.tinytap.it"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET, OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"0"`
}

// Origins returns the trimmed, non-empty allowed origins.
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LLMConfig holds settings for the external text/vision model.
type LLMConfig struct {
	APIKey         string        `yaml:"api_key"          env:"LLM_API_KEY"          env-required:"true"`
	BaseURL        string        `yaml:"base_url"         env:"LLM_BASE_URL"`
	Model          string        `yaml:"model"            env:"LLM_MODEL"            env-default:"claude-sonnet-4-5"`
	VisionModel    string        `yaml:"vision_model"     env:"LLM_VISION_MODEL"     env-default:"claude-sonnet-4-5"`
	MaxTokens      int64         `yaml:"max_tokens"       env:"LLM_MAX_TOKENS"       env-default:"4000"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"LLM_REQUEST_TIMEOUT"  env-default:"60s"`
}

// StorageConfig selects where dictation documents are kept.
type StorageConfig struct {
	Backend      string `yaml:"backend"       env:"STORAGE_BACKEND"       env-default:"file"`
	Dir          string `yaml:"dir"           env:"STORAGE_DIR"           env-default:"./dictations"`
	TemplatePath string `yaml:"template_path" env:"STORAGE_TEMPLATE_PATH"`
}

// DatabaseConfig holds PostgreSQL connection settings, used when
// Storage.Backend is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DictationConfig holds slide assembly settings.
type DictationConfig struct {
	Layout           string `yaml:"layout"            env:"DICTATION_LAYOUT"            env-default:"three-column"`
	ExampleSentences bool   `yaml:"example_sentences" env:"DICTATION_EXAMPLE_SENTENCES" env-default:"true"`
	MaxWordPairs     int    `yaml:"max_word_pairs"    env:"DICTATION_MAX_WORD_PAIRS"    env-default:"100"`
}

// PlayerConfig points at the external web player.
type PlayerConfig struct {
	URL string `yaml:"url" env:"PLAYER_URL" env-default:"https://staging-static.tinytap.it/media/webplayer/webplayer.html"`
	// PublicBaseURL is the externally visible base of this service. When
	// empty it is derived from the incoming request.
	PublicBaseURL string `yaml:"public_base_url" env:"PLAYER_PUBLIC_BASE_URL"`
}

// Origin returns scheme://host of the player URL.
func (c PlayerConfig) Origin() string {
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// UploadConfig limits word-pair file uploads.
type UploadConfig struct {
	MaxBytes  int64  `yaml:"max_bytes" env:"UPLOAD_MAX_BYTES" env-default:"10485760"`
	Delimiter string `yaml:"delimiter" env:"UPLOAD_DELIMITER" env-default:","`
}

// RateLimitConfig limits LLM-backed requests per client IP.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
