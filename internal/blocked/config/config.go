package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "BLOCKED_"

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	Log    LogConfig    `koanf:"log"`
	Source SourceConfig `koanf:"source"`
	Cache  CacheConfig  `koanf:"cache"`
	Bloom  BloomConfig  `koanf:"bloom"`
}

// LogConfig controls log verbosity: "debug", "info", "warn", or "error".
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// SourceConfig describes where the blocked servers list is fetched from.
type SourceConfig struct {
	URL     string        `koanf:"url" validate:"required,http_url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// CacheConfig sizes the decision cache. Zero disables it.
type CacheConfig struct {
	Size int `koanf:"size" validate:"gte=0"`
}

// BloomConfig tunes the Bloom gate in front of the hash set.
type BloomConfig struct {
	Enabled bool    `koanf:"enabled"`
	FPRate  float64 `koanf:"fp_rate" validate:"fp_rate"`
}

// DEFAULT_APP_CONFIG is applied before environment overrides.
var DEFAULT_APP_CONFIG = AppConfig{
	Env: "prod",
	Log: LogConfig{Level: "info"},
	Source: SourceConfig{
		URL:     "https://sessionserver.mojang.com/blockedservers",
		Timeout: 30 * time.Second,
	},
	Cache: CacheConfig{Size: 1024},
	Bloom: BloomConfig{Enabled: true, FPRate: 0.01},
}

// envKeys maps environment variable names (without prefix) to koanf paths.
var envKeys = map[string]string{
	"ENV":            "env",
	"LOG_LEVEL":      "log.level",
	"SOURCE_URL":     "source.url",
	"SOURCE_TIMEOUT": "source.timeout",
	"CACHE_SIZE":     "cache.size",
	"BLOOM_ENABLED":  "bloom.enabled",
	"BLOOM_FP_RATE":  "bloom.fp_rate",
}

// validFPRate accepts false-positive rates strictly between 0 and 1.
func validFPRate(fl validator.FieldLevel) bool {
	p := fl.Field().Float()
	return p > 0 && p < 1
}

// envLoader loads BLOCKED_* variables; unknown names are ignored.
// It is a variable so tests can replace it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[strings.ToUpper(strings.TrimPrefix(key, EnvPrefix))]
			if !ok {
				return "", nil
			}
			return path, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG through the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "fp_rate" tag.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("fp_rate", validFPRate)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}
