package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SupabaseConfig struct {
	URL                  string  `mapstructure:"url"`
	AnonKey              string  `mapstructure:"anon_key"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config SupabaseConfig) validate() error {

	var missingFields []string

	if config.URL == "" {
		missingFields = append(missingFields, "url")
	}

	if config.AnonKey == "" {
		missingFields = append(missingFields, "anon_key")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config SupabaseConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("supabase.url", "SUPABASE_URL")
	if err != nil {
		return err
	}

	err = viper.BindEnv("supabase.anon_key", "SUPABASE_ANON_KEY")
	if err != nil {
		return err
	}

	return viper.BindEnv("supabase.max_requests_per_second", "SUPABASE_MAX_REQUESTS_PER_SECOND")
}
