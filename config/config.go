package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName = "espnwl"
	envPrefix  = "espnwl"
)

type Config struct {
	ESPN ESPNConfig `mapstructure:"espn"`
	HTTP HTTPConfig `mapstructure:"http"`
	Log  LogConfig  `mapstructure:"log"`
}

type ESPNConfig struct {
	LeagueID int    `mapstructure:"league_id"`
	Year     int    `mapstructure:"year"`
	ESPNS2   string `mapstructure:"espn_s2"`
	SWID     string `mapstructure:"swid"`
	// Requests per second sent to ESPN.
	RateLimit       int           `mapstructure:"rate_limit"`
	Timeout         time.Duration `mapstructure:"timeout"`
	ScheduleRefresh time.Duration `mapstructure:"schedule_refresh"`
}

type HTTPConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// If set to a non-empty path, logs will also be written to the log file.
	File string `mapstructure:"file"`
}

// New returns a viper instance with every default set and env lookups
// enabled, e.g. ESPNWL_ESPN_LEAGUE_ID overrides espn.league_id.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("espn.league_id", 0)
	v.SetDefault("espn.year", time.Now().Year())
	v.SetDefault("espn.espn_s2", "")
	v.SetDefault("espn.swid", "")
	v.SetDefault("espn.rate_limit", 5)
	v.SetDefault("espn.timeout", "30s")
	v.SetDefault("espn.schedule_refresh", "12h")

	v.SetDefault("http.port", 3000)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Read loads a .env file if there is one, then cfgFile, or espnwl.{yaml,json,toml}
// from $HOME or the working directory when cfgFile is empty. Having no config
// file at all is fine, defaults and env are used.
func Read(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("error finding home dir: %w", err)
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		slog.Debug("no config file found, using defaults and env")
	} else {
		slog.Debug("using config file", slog.String("path", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ESPN.Year <= 0 {
		return fmt.Errorf("invalid espn year: %d", c.ESPN.Year)
	}
	if c.ESPN.RateLimit < 0 {
		return fmt.Errorf("invalid espn rate limit: %d", c.ESPN.RateLimit)
	}
	if c.ESPN.Timeout <= 0 {
		return fmt.Errorf("invalid espn timeout: %v", c.ESPN.Timeout)
	}
	if c.ESPN.ScheduleRefresh <= 0 {
		return fmt.Errorf("invalid schedule refresh interval: %v", c.ESPN.ScheduleRefresh)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTP.Port)
	}
	return nil
}

// HasCookies is true when both private league cookies are configured.
func (c *ESPNConfig) HasCookies() bool {
	return c.ESPNS2 != "" && c.SWID != ""
}
