package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigFileEnvVar names an optional YAML file layered between defaults and env.
const ConfigFileEnvVar = "CONFIG_FILE"

// Config holds application configuration.
type Config struct {
	Port            string        `koanf:"port"`
	Env             string        `koanf:"env"`
	DatabaseURL     string        `koanf:"database_url"`
	CORSAllowOrigin []string      `koanf:"cors_allow_origins"`
	RedisAddr       string        `koanf:"redis_addr"`
	CatalogCacheTTL time.Duration `koanf:"catalog_cache_ttl"`
	RunMigrations   bool          `koanf:"run_migrations"`
}

// envKeys maps accepted environment variables to config paths.
var envKeys = map[string]string{
	"PORT":               "port",
	"ENV":                "env",
	"DATABASE_URL":       "database_url",
	"CORS_ALLOW_ORIGINS": "cors_allow_origins",
	"REDIS_ADDR":         "redis_addr",
	"CATALOG_CACHE_TTL":  "catalog_cache_ttl",
	"RUN_MIGRATIONS":     "run_migrations",
}

func defaults() Config {
	return Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		CatalogCacheTTL: 5 * time.Minute,
		RunMigrations:   true,
	}
}

// Load reads configuration from defaults, an optional YAML file and the environment,
// in increasing order of precedence.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := strings.TrimSpace(os.Getenv(ConfigFileEnvVar)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Env = normalizeEnv(cfg.Env)
	cfg.CORSAllowOrigin = splitAndTrim(cfg.CORSAllowOrigin)
	if cfg.Env == "production" && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required in production")
	}
	return cfg, nil
}

// IsDevLike reports whether in-memory fallbacks are acceptable.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}

// envTransform drops unknown and empty variables so they never mask file or default values.
func envTransform(key, value string) (string, interface{}) {
	path, ok := envKeys[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", nil
	}
	return path, value
}

func splitAndTrim(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, p := range strings.Split(item, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
