package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/logging"
)

type Config struct {
	Port        string
	Environment string

	API struct {
		URL        string
		AdminToken string
		Timeout    time.Duration
	}

	Gallery struct {
		Manifest  string
		Anchor    string
		Order     []string
		AssetsDir string
		AssetsURL string
	}

	CSRFKey        []byte
	FlashSecret    string
	SecureCookies  bool
	EnableAPIProxy bool
	EnableTracing  bool

	Log logging.Config
}

// Load reads the configuration from the environment. Malformed values are
// reported as errors rather than silently replaced.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
	}

	cfg.API.URL = strings.TrimRight(getEnvOrDefault("API_URL", "http://localhost:5000/api"), "/")
	cfg.API.AdminToken = os.Getenv("ADMIN_TOKEN")

	cfg.Gallery.Manifest = os.Getenv("GALLERY_MANIFEST")
	cfg.Gallery.Anchor = getEnvOrDefault("GALLERY_ANCHOR", "cafe")
	cfg.Gallery.Order = getEnvAsListOrDefault("GALLERY_ORDER", nil)
	cfg.Gallery.AssetsDir = os.Getenv("ASSETS_DIR")
	cfg.Gallery.AssetsURL = "/" + strings.Trim(getEnvOrDefault("ASSETS_URL", "/assets"), "/")

	cfg.Log = logging.Config{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		Format:      getEnvOrDefault("LOG_FORMAT", "json"),
		Output:      "stdout",
		Environment: cfg.Environment,
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return nil, fmt.Errorf("LOG_FORMAT: unknown format %q", cfg.Log.Format)
	}

	var err error
	if cfg.API.Timeout, err = getEnvAsDurationOrDefault("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SecureCookies, err = getEnvAsBoolOrDefault("SECURE_COOKIES", cfg.Environment == "production"); err != nil {
		return nil, err
	}
	if cfg.EnableAPIProxy, err = getEnvAsBoolOrDefault("ENABLE_API_PROXY", false); err != nil {
		return nil, err
	}
	if cfg.CSRFKey, err = loadCSRFKey(); err != nil {
		return nil, err
	}
	if cfg.FlashSecret, err = loadFlashSecret(); err != nil {
		return nil, err
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT: invalid port %q", cfg.Port)
	}

	// CAFE_ENABLE_TRACING turns on AWS X-Ray. AWS_XRAY_SDK_DISABLED=true
	// always wins.
	enableKey := os.Getenv("CAFE_ENABLE_TRACING")
	if !sdkDisabled() && (strings.ToLower(enableKey) == "true" || enableKey == "1") {
		os.Setenv("AWS_XRAY_SDK_DISABLED", "FALSE")
		cfg.EnableTracing = true
	} else {
		os.Setenv("AWS_XRAY_SDK_DISABLED", "TRUE")
		cfg.EnableTracing = false
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	return b, nil
}

// getEnvAsDurationOrDefault accepts Go durations ("15s") or whole seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		seconds, convErr := strconv.Atoi(value)
		if convErr != nil {
			return 0, fmt.Errorf("%s: invalid duration %q", key, value)
		}
		d = time.Duration(seconds) * time.Second
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be positive, got %q", key, value)
	}
	return d, nil
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

// loadCSRFKey accepts 32 raw bytes or 64 hex characters. Without a key a
// random one is generated, which invalidates forms across restarts.
func loadCSRFKey() ([]byte, error) {
	value := os.Getenv("CSRF_KEY")
	switch {
	case value == "":
		return randomBytes(32)
	case len(value) == 64:
		key, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("CSRF_KEY: invalid hex: %w", err)
		}
		return key, nil
	case len(value) == 32:
		return []byte(value), nil
	default:
		return nil, fmt.Errorf("CSRF_KEY: want 32 bytes or 64 hex characters, got %d characters", len(value))
	}
}

func loadFlashSecret() (string, error) {
	if value := os.Getenv("FLASH_SECRET"); value != "" {
		return value, nil
	}
	key, err := randomBytes(32)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	return b, nil
}

// Check if SDK is disabled
func sdkDisabled() bool {
	disableKey := os.Getenv("AWS_XRAY_SDK_DISABLED")
	return strings.ToLower(disableKey) == "true"
}
