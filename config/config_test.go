package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("UPSTREAM_BASE_URL", "http://upstream:9000")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://upstream:9000", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Cache.APITTL)
	assert.Equal(t, time.Minute, cfg.Cache.SpecialtiesTTL)
	assert.Equal(t, 512, cfg.Cache.MaxEntries)
	assert.Equal(t, 30*time.Second, cfg.Kiosk.IdleTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Empty(t, cfg.Rate.TrustedProxies)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	chdir(t, dir)
	content := "KIOSK_TITLE=Kiosko Norte\nCACHE_API_TTL=not-a-duration\nREDIS_ENABLED=true\nREDIS_HOST=cache\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Kiosko Norte", cfg.Kiosk.Title)
	assert.Equal(t, 30*time.Second, cfg.Cache.APITTL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache", cfg.Redis.Host)
}

func TestLoadConfig_TrustedProxies(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.7/32"),
	}, cfg.Rate.TrustedProxies)
}

func TestLoadConfig_InvalidTrustedProxy(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "not-an-ip")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "RATE_LIMIT_TRUSTED_PROXIES")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the original one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
