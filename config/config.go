package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"aqi-notifier/internal/models"
)

const DefaultConfigFile = "config/config.yaml"

// Fallbacks for keys where an empty value means "use the default".
// Keep in sync with the default tags below.
const (
	DefaultPort         = "3000"
	DefaultLocationName = "Лимассол"
	DefaultLatitude     = "34.6841"
	DefaultLongitude    = "33.0379"
	DefaultTimezone     = "auto"
)

// Config is loaded once at startup. Fields with a default tag are env-only;
// the rest may also come from the YAML file, with the environment taking precedence.
type Config struct {
	AppName  string `envconfig:"APP_NAME" default:"aqi-notifier" validate:"required"`
	AppEnv   string `envconfig:"APP_ENV" default:"dev" validate:"oneof=dev prod test"`
	Port     string `envconfig:"PORT" default:"3000" validate:"required,numeric"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"debug" validate:"oneof=debug info warn error"`

	LocationName string `envconfig:"LOCATION_NAME" default:"Лимассол" validate:"required"`
	// Coordinates stay raw so a bad value fails the invocation, not the boot.
	Latitude  string `envconfig:"LATITUDE" default:"34.6841"`
	Longitude string `envconfig:"LONGITUDE" default:"33.0379"`
	Timezone  string `envconfig:"TIMEZONE" default:"auto" validate:"required"`

	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `envconfig:"TELEGRAM_CHAT_ID"`

	FetchTimeout       time.Duration `envconfig:"FETCH_TIMEOUT" default:"20s" validate:"gte=0"`
	UpstreamMaxRetries uint64        `envconfig:"UPSTREAM_MAX_RETRIES" default:"0" validate:"lte=10"`

	SentryDSN string `envconfig:"SENTRY_DSN" yaml:"sentry_dsn"`

	Schedule          string `envconfig:"SCHEDULE_CRON" yaml:"schedule"`
	WeatherBaseURL    string `envconfig:"WEATHER_BASE_URL" yaml:"weather_base_url" validate:"omitempty,url"`
	AirQualityBaseURL string `envconfig:"AIR_QUALITY_BASE_URL" yaml:"air_quality_base_url" validate:"omitempty,url"`
	TelegramBaseURL   string `envconfig:"TELEGRAM_BASE_URL" yaml:"telegram_base_url" validate:"omitempty,url"`
}

var validate = validator.New()

func NewConfig() (*Config, error) {
	return Load(DefaultConfigFile)
}

// Load reads .env, then the YAML file at path (if any), then the environment.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cnf Config

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read YAML config %s: %w", path, err)
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.applyFallbacks()

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

// applyFallbacks replaces blank values of the location and port keys with their
// defaults; envconfig only applies a default when the variable is unset.
func (c *Config) applyFallbacks() {
	for _, f := range []struct {
		field *string
		def   string
	}{
		{&c.Port, DefaultPort},
		{&c.LocationName, DefaultLocationName},
		{&c.Latitude, DefaultLatitude},
		{&c.Longitude, DefaultLongitude},
		{&c.Timezone, DefaultTimezone},
	} {
		if strings.TrimSpace(*f.field) == "" {
			*f.field = f.def
		}
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves the configured coordinates. It fails with a ConfigError
// when either coordinate is not a finite number.
func (c *Config) Location() (models.Location, error) {
	lat, latOK := parseCoordinate(c.Latitude)
	lon, lonOK := parseCoordinate(c.Longitude)
	if !latOK || !lonOK {
		return models.Location{}, &models.ConfigError{Message: "Invalid LATITUDE/LONGITUDE"}
	}

	return models.Location{
		Name:      c.LocationName,
		Latitude:  lat,
		Longitude: lon,
		Timezone:  c.Timezone,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod"
}

func parseCoordinate(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
