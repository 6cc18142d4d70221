package repositories

import (
	"context"
	"net/http"

	"aqi-notifier/config"
	"aqi-notifier/internal/models"
	"aqi-notifier/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherRepository interface {
	Name() string
	FetchWeather(ctx context.Context, loc models.Location) (models.WeatherSnapshot, error)
}

type AirQualityRepository interface {
	Name() string
	FetchAirQuality(ctx context.Context, loc models.Location) (models.AirQualitySnapshot, error)
}

// InitRepositories builds both forecast repositories from the config, sharing one HTTP client.
func InitRepositories(cfg *config.Config, l *logger.Logger, httpClient HTTPClient) (WeatherRepository, AirQualityRepository) {
	client := NewRetryingClient(httpClient, cfg.UpstreamMaxRetries)

	weather := NewOpenMeteoRepository(cfg.WeatherBaseURL, l, client)
	air := NewAirQualityRepository(cfg.AirQualityBaseURL, l, client)

	return weather, air
}
