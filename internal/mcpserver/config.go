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
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Result defaults.
	ResultLimit int
	MaxLimit    int

	// Key conversion defaults.
	MaxDepth int

	// Array tool limits.
	MaxExpand int

	// Validate tool defaults.
	ValidateNoWarnings bool
	RulesFile          string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TAXOKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("TAXOKIT_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("TAXOKIT_CACHE_MAX_SIZE", 32),
		CacheTTL:           envDuration("TAXOKIT_CACHE_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("TAXOKIT_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ResultLimit:        envInt("TAXOKIT_RESULT_LIMIT", 100),
		MaxLimit:           envInt("TAXOKIT_MAX_LIMIT", 1000),
		MaxDepth:           envInt("TAXOKIT_MAX_DEPTH", 100),
		MaxExpand:          envInt("TAXOKIT_MAX_EXPAND", 10000),
		ValidateNoWarnings: envBool("TAXOKIT_VALIDATE_NO_WARNINGS", false),
		RulesFile:          envFile("TAXOKIT_RULES_FILE"),
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

// envFile returns the path in key when it names a regular file.
func envFile(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	info, err := os.Stat(v)
	if err != nil || !info.Mode().IsRegular() {
		slog.Warn("invalid file env var, ignoring", "key", key, "value", v)
		return ""
	}
	return v
}
