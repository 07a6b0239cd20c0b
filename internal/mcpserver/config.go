package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Metadata cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheSweepInterval time.Duration

	// Validate tool defaults.
	ValidateStrict     bool
	ValidateNoWarnings bool
	ValidateKeys       bool

	// MetadataFile is the default metadata document used when a tool call
	// does not provide one.
	MetadataFile string

	// MaxInlineSize caps inline request/metadata content in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from ODATATOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("ODATATOOLS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("ODATATOOLS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("ODATATOOLS_CACHE_FILE_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("ODATATOOLS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ValidateStrict:     envBool("ODATATOOLS_VALIDATE_STRICT", false),
		ValidateNoWarnings: envBool("ODATATOOLS_VALIDATE_NO_WARNINGS", false),
		ValidateKeys:       envBool("ODATATOOLS_VALIDATE_KEYS", false),
		MetadataFile:       os.Getenv("ODATATOOLS_METADATA_FILE"),
		MaxInlineSize:      int64(envInt("ODATATOOLS_MAX_INLINE_SIZE", 1<<20)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
