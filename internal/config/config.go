package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderAmadeus = "amadeus"
	ProviderFixture = "fixture"
)

type Config struct {
	Port         string        `yaml:"port"`
	CacheEnabled bool          `yaml:"cache_enabled"`
	Redis        RedisConfig   `yaml:"redis"`
	Provider     string        `yaml:"provider"`
	Amadeus      AmadeusConfig `yaml:"amadeus"`
	ClientRPS    float64       `yaml:"client_rps"`
	ClientBurst  int           `yaml:"client_burst"`
	SessionTTL   time.Duration `yaml:"session_ttl"`
	MaxSessions  int           `yaml:"max_sessions"`
	// Carriers extends the built-in carrier name table.
	Carriers map[string]string `yaml:"carriers"`
}

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type AmadeusConfig struct {
	BaseURL      string        `yaml:"base_url"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Timeout      time.Duration `yaml:"timeout"`
	RPS          float64       `yaml:"rps"`
	Burst        int           `yaml:"burst"`
	MaxResults   int           `yaml:"max_results"`
}

func Default() *Config {
	return &Config{
		Port:         "8080",
		CacheEnabled: true,
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
			TTL:  5 * time.Minute,
		},
		Provider: ProviderAmadeus,
		Amadeus: AmadeusConfig{
			Timeout:    10 * time.Second,
			RPS:        10,
			Burst:      1,
			MaxResults: 50,
		},
		ClientRPS:   5,
		ClientBurst: 10,
		SessionTTL:  30 * time.Minute,
		MaxSessions: 1000,
	}
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load builds the configuration from the file named by CONFIG_FILE, if
// any, and then applies environment variables over it.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.CacheEnabled = getEnvBool("CACHE_ENABLED", cfg.CacheEnabled)
	cfg.Redis.Host = getEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = getEnv("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.TTL = getEnvDuration("REDIS_TTL", cfg.Redis.TTL)
	cfg.Provider = getEnv("PROVIDER", cfg.Provider)
	cfg.Amadeus.BaseURL = getEnv("AMADEUS_BASE_URL", cfg.Amadeus.BaseURL)
	cfg.Amadeus.ClientID = getEnv("AMADEUS_CLIENT_ID", cfg.Amadeus.ClientID)
	cfg.Amadeus.ClientSecret = getEnv("AMADEUS_CLIENT_SECRET", cfg.Amadeus.ClientSecret)
	cfg.Amadeus.Timeout = getEnvDuration("PROVIDER_TIMEOUT", cfg.Amadeus.Timeout)
	cfg.Amadeus.RPS = getEnvFloat("PROVIDER_RPS", cfg.Amadeus.RPS)
	cfg.Amadeus.Burst = getEnvInt("PROVIDER_BURST", cfg.Amadeus.Burst)
	cfg.Amadeus.MaxResults = getEnvInt("MAX_RESULTS", cfg.Amadeus.MaxResults)
	cfg.ClientRPS = getEnvFloat("CLIENT_RPS", cfg.ClientRPS)
	cfg.ClientBurst = getEnvInt("CLIENT_BURST", cfg.ClientBurst)
	cfg.SessionTTL = getEnvDuration("SESSION_TTL", cfg.SessionTTL)
	cfg.MaxSessions = getEnvInt("MAX_SESSIONS", cfg.MaxSessions)

	if cfg.Provider != ProviderAmadeus && cfg.Provider != ProviderFixture {
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return cfg, nil
}

// HasCredentials reports whether the Amadeus client can authenticate.
func (c *Config) HasCredentials() bool {
	return c.Amadeus.ClientID != "" && c.Amadeus.ClientSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
