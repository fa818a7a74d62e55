package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Booking BookingConfig
	Geocode GeocodeConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type BookingConfig struct {
	HorizonDays   int
	BufferMinutes int
	Timezone      string
	SessionTTL    time.Duration
}

type GeocodeConfig struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 30)
	viper.SetDefault("BOOKING_BUFFER_MINUTES", 30)
	viper.SetDefault("BOOKING_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")

	// .env is optional, environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("BOOKING_SESSION_TTL"))
	if err != nil {
		sessionTTL = 2 * time.Hour
	}

	geocodeTimeout, err := time.ParseDuration(viper.GetString("GEOCODE_TIMEOUT"))
	if err != nil {
		geocodeTimeout = 8 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			HorizonDays:   viper.GetInt("BOOKING_HORIZON_DAYS"),
			BufferMinutes: viper.GetInt("BOOKING_BUFFER_MINUTES"),
			Timezone:      viper.GetString("BOOKING_TIMEZONE"),
			SessionTTL:    sessionTTL,
		},
		Geocode: GeocodeConfig{
			BaseURL: viper.GetString("GEOCODE_BASE_URL"),
			Timeout: geocodeTimeout,
		},
	}

	return config, nil
}
