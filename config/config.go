package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Kiosk    KioskConfig
	Rate     RateLimitConfig
}

type AppConfig struct {
	Port       string
	Env        string
	LogLevel   string
	CORSOrigin string
}

// UpstreamConfig points at the hospital REST API and its login endpoint.
type UpstreamConfig struct {
	BaseURL  string
	AuthURL  string
	Username string
	Password string
	Timeout  time.Duration
	TokenTTL time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type CacheConfig struct {
	APITTL         time.Duration
	SpecialtiesTTL time.Duration
	MaxEntries     int
	WarmInterval   time.Duration
}

type KioskConfig struct {
	Title       string
	IdleTimeout time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
	// TrustedProxies may set X-Forwarded-For / X-Real-IP for the client key.
	TrustedProxies []netip.Prefix
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	setDefaults()

	// The kiosk usually runs from plain environment variables; .env is optional.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	trustedProxies, err := parsePrefixes(viper.GetString("RATE_LIMIT_TRUSTED_PROXIES"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:       viper.GetString("APP_PORT"),
			Env:        viper.GetString("APP_ENV"),
			LogLevel:   viper.GetString("LOG_LEVEL"),
			CORSOrigin: viper.GetString("CORS_ALLOW_ORIGIN"),
		},
		Upstream: UpstreamConfig{
			BaseURL:  viper.GetString("UPSTREAM_BASE_URL"),
			AuthURL:  viper.GetString("UPSTREAM_AUTH_URL"),
			Username: viper.GetString("UPSTREAM_USERNAME"),
			Password: viper.GetString("UPSTREAM_PASSWORD"),
			Timeout:  parseDuration("UPSTREAM_TIMEOUT", 30*time.Second),
			TokenTTL: parseDuration("UPSTREAM_TOKEN_TTL", time.Hour),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			APITTL:         parseDuration("CACHE_API_TTL", 30*time.Second),
			SpecialtiesTTL: parseDuration("CACHE_SPECIALTIES_TTL", time.Minute),
			MaxEntries:     viper.GetInt("CACHE_MAX_ENTRIES"),
			WarmInterval:   parseDuration("CACHE_WARM_INTERVAL", 25*time.Second),
		},
		Kiosk: KioskConfig{
			Title:       viper.GetString("KIOSK_TITLE"),
			IdleTimeout: parseDuration("KIOSK_IDLE_TIMEOUT", 30*time.Second),
		},
		Rate: RateLimitConfig{
			RPS:            viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:          viper.GetInt("RATE_LIMIT_BURST"),
			TrustedProxies: trustedProxies,
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:3001")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("CACHE_MAX_ENTRIES", 512)
	viper.SetDefault("KIOSK_TITLE", "Directorio Edificio Bless")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// parsePrefixes reads a comma separated list of CIDRs or single addresses.
func parsePrefixes(raw string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.Contains(item, "/") {
			p, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("invalid RATE_LIMIT_TRUSTED_PROXIES entry %q: %w", item, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_TRUSTED_PROXIES entry %q: %w", item, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
