package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocodingBaseURL string
	ForecastBaseURL  string
	UpstreamTimeout  time.Duration

	GeocodeCacheTTL             time.Duration
	GeocodeCacheCleanupInterval time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-tool")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com")
	v.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("GEOCODE_CACHE_TTL", 24*time.Hour)
	v.SetDefault("GEOCODE_CACHE_CLEANUP_INTERVAL", time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:                 v.GetString("SERVICE_NAME"),
		ServerAddress:               v.GetString("SERVER_ADDRESS"),
		DBName:                      v.GetString("DATABASE_NAME"),
		DBPassword:                  v.GetString("DATABASE_PASSWORD"),
		DBUser:                      v.GetString("DATABASE_USER"),
		DBPort:                      v.GetString("DATABASE_PORT"),
		DBHost:                      v.GetString("DATABASE_HOST"),
		Env:                         v.GetString("ENV"),
		LogLevel:                    v.GetString("LOG_LEVEL"),
		HTTPTimeout:                 v.GetInt32("HTTP_TIMEOUT"),
		GeocodingBaseURL:            v.GetString("GEOCODING_BASE_URL"),
		ForecastBaseURL:             v.GetString("FORECAST_BASE_URL"),
		UpstreamTimeout:             v.GetDuration("UPSTREAM_TIMEOUT"),
		GeocodeCacheTTL:             v.GetDuration("GEOCODE_CACHE_TTL"),
		GeocodeCacheCleanupInterval: v.GetDuration("GEOCODE_CACHE_CLEANUP_INTERVAL"),
	}

	if config.GeocodingBaseURL == "" || config.ForecastBaseURL == "" {
		return nil, fmt.Errorf("GEOCODING_BASE_URL and FORECAST_BASE_URL must not be empty")
	}

	if config.GeocodeCacheTTL > 0 && config.GeocodeCacheCleanupInterval <= 0 {
		return nil, fmt.Errorf("invalid GEOCODE_CACHE_CLEANUP_INTERVAL: %s", config.GeocodeCacheCleanupInterval)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DatabaseEnabled reports whether lookup history should be persisted.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
