package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqi-notifier/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "PORT", "LOG_LEVEL", "LOCATION_NAME", "LATITUDE", "LONGITUDE",
		"TIMEZONE", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "FETCH_TIMEOUT", "UPSTREAM_MAX_RETRIES",
		"SENTRY_DSN", "SCHEDULE_CRON", "WEATHER_BASE_URL", "AIR_QUALITY_BASE_URL", "TELEGRAM_BASE_URL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "aqi-notifier", cfg.AppName)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "Лимассол", cfg.LocationName)
	assert.Equal(t, "34.6841", cfg.Latitude)
	assert.Equal(t, "33.0379", cfg.Longitude)
	assert.Equal(t, "auto", cfg.Timezone)
	assert.Equal(t, 20*time.Second, cfg.FetchTimeout)
	assert.Zero(t, cfg.UpstreamMaxRetries)
	assert.Empty(t, cfg.TelegramBotToken)
	assert.Empty(t, cfg.WeatherBaseURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("LOCATION_NAME", "Пафос")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("UPSTREAM_MAX_RETRIES", "2")

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "Пафос", cfg.LocationName)
	assert.Equal(t, "123:abc", cfg.TelegramBotToken)
	assert.Equal(t, "-100200", cfg.TelegramChatID)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.EqualValues(t, 2, cfg.UpstreamMaxRetries)
}

func TestLoad_YAMLThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, `
weather_base_url: http://weather.local
air_quality_base_url: http://air.local
schedule: "0 7 * * *"
`)
	t.Setenv("AIR_QUALITY_BASE_URL", "http://air.override")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://weather.local", cfg.WeatherBaseURL)
	assert.Equal(t, "http://air.override", cfg.AirQualityBaseURL)
	assert.Equal(t, "0 7 * * *", cfg.Schedule)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, "weather_base_url: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "staging")

	_, err := Load("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_BadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT", "soon")

	_, err := Load("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error environment variable parsing")
}

func TestLoad_BadCoordinatesDoNotFailBoot(t *testing.T) {
	clearEnv(t)
	t.Setenv("LATITUDE", "north")

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	_, err = cfg.Location()
	var cfgErr *models.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "Invalid LATITUDE/LONGITUDE", cfgErr.Message)
}

func TestLoad_BlankValuesFallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("LOCATION_NAME", "")
	t.Setenv("LATITUDE", "")
	t.Setenv("LONGITUDE", "  ")
	t.Setenv("TIMEZONE", "")

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLocationName, cfg.LocationName)
	assert.Equal(t, DefaultLatitude, cfg.Latitude)
	assert.Equal(t, DefaultLongitude, cfg.Longitude)
	assert.Equal(t, DefaultTimezone, cfg.Timezone)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.InDelta(t, 34.6841, loc.Latitude, 1e-9)
}

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lon     string
		wantErr bool
	}{
		{name: "valid", lat: "34.6841", lon: "33.0379"},
		{name: "padded", lat: " 34.6841 ", lon: "33.0379"},
		{name: "NaN latitude", lat: "NaN", lon: "33.0379", wantErr: true},
		{name: "infinite longitude", lat: "34.6841", lon: "+Inf", wantErr: true},
		{name: "empty latitude", lat: "", lon: "33.0379", wantErr: true},
		{name: "garbage", lat: "34.6841", lon: "east", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LocationName: "Лимассол", Latitude: tt.lat, Longitude: tt.lon, Timezone: "auto"}

			loc, err := cfg.Location()
			if tt.wantErr {
				var cfgErr *models.ConfigError
				assert.True(t, errors.As(err, &cfgErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Лимассол", loc.Name)
			assert.InDelta(t, 34.6841, loc.Latitude, 1e-9)
			assert.InDelta(t, 33.0379, loc.Longitude, 1e-9)
			assert.Equal(t, "auto", loc.Timezone)
		})
	}
}
