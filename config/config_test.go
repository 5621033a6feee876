package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRead_file(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "espnwl.yaml")
	contents := `
espn:
  league_id: 123456
  year: 2025
  espn_s2: s2-cookie
  swid: "{SWID}"
  timeout: 5s
http:
  port: 8080
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Read(New(), path)
	require.NoError(t, err)

	require.Equal(t, 123456, cfg.ESPN.LeagueID)
	require.Equal(t, 2025, cfg.ESPN.Year)
	require.Equal(t, "s2-cookie", cfg.ESPN.ESPNS2)
	require.Equal(t, "{SWID}", cfg.ESPN.SWID)
	require.Equal(t, 5*time.Second, cfg.ESPN.Timeout)
	require.Equal(t, 12*time.Hour, cfg.ESPN.ScheduleRefresh)
	require.Equal(t, 5, cfg.ESPN.RateLimit)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.ESPN.HasCookies())
}

func TestRead_env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ESPNWL_ESPN_LEAGUE_ID", "222222")
	t.Setenv("ESPNWL_ESPN_YEAR", "2024")
	t.Setenv("ESPNWL_HTTP_PORT", "9000")

	cfg, err := Read(New(), "")
	require.NoError(t, err)

	require.Equal(t, 222222, cfg.ESPN.LeagueID)
	require.Equal(t, 2024, cfg.ESPN.Year)
	require.Equal(t, 9000, cfg.HTTP.Port)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.ESPN.HasCookies())
}

func TestRead_missingFile(t *testing.T) {
	_, err := Read(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			ESPN: ESPNConfig{LeagueID: 1, Year: 2025, RateLimit: 5, Timeout: time.Second, ScheduleRefresh: time.Hour},
			HTTP: HTTPConfig{Port: 3000},
		}
	}

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "year", modify: func(c *Config) { c.ESPN.Year = 0 }},
		{name: "rate limit", modify: func(c *Config) { c.ESPN.RateLimit = -1 }},
		{name: "timeout", modify: func(c *Config) { c.ESPN.Timeout = 0 }},
		{name: "schedule refresh", modify: func(c *Config) { c.ESPN.ScheduleRefresh = -time.Minute }},
		{name: "port", modify: func(c *Config) { c.HTTP.Port = 70000 }},
	}

	c := valid()
	require.NoError(t, c.Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.modify(&c)
			require.Error(t, c.Validate())
		})
	}
}
