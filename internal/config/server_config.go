package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	MetricsPort     int           `mapstructure:"metrics_port"`
	SessionCacheTTL time.Duration `mapstructure:"session_cache_ttl"`
	StatsCron       string        `mapstructure:"stats_cron"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 {
		return fmt.Errorf("port must be positive")
	}

	if config.MetricsPort <= 0 {
		return fmt.Errorf("metrics port must be positive")
	}

	if config.SessionCacheTTL < 0 {
		return fmt.Errorf("session cache ttl must be non-negative")
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("server.port", "PORT")
	if err != nil {
		return err
	}

	err = viper.BindEnv("server.metrics_port", "METRICS_PORT")
	if err != nil {
		return err
	}

	return viper.BindEnv("server.session_cache_ttl", "SESSION_CACHE_TTL")
}
