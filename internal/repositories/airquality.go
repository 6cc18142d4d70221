package repositories

import (
	"context"
	"strings"

	"aqi-notifier/internal/models"
	"aqi-notifier/internal/stats"
	"aqi-notifier/pkg/logger"
)

const (
	AirQualityBaseURL = "https://air-quality-api.open-meteo.com"
	airQualityPath    = "/v1/air-quality"
)

type OpenMeteoAirQualityRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewAirQualityRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *OpenMeteoAirQualityRepository {
	if baseURL == "" {
		baseURL = AirQualityBaseURL
	}
	return &OpenMeteoAirQualityRepository{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

func (a *OpenMeteoAirQualityRepository) Name() string {
	return "open-meteo-air-quality"
}

type AirQualityHourly struct {
	Time Labels `json:"time"`
	PM10 Series `json:"pm10"`
	PM25 Series `json:"pm2_5"`
}

// FetchAirQuality requests one day of hourly particulate data and aggregates it.
func (a *OpenMeteoAirQualityRepository) FetchAirQuality(ctx context.Context, loc models.Location) (models.AirQualitySnapshot, error) {
	params := locationParams(loc)
	params.Set("hourly", "pm10,pm2_5")

	var response struct {
		Hourly AirQualityHourly `json:"hourly"`
	}

	if err := getJSON(ctx, a.httpClient, a.l, a.Name(), a.baseURL+airQualityPath, params, &response); err != nil {
		return models.AirQualitySnapshot{}, err
	}

	a.l.Info("parsed air quality forecast", map[string]any{
		"hours": len(response.Hourly.Time),
	})

	return aggregateHourly(response.Hourly), nil
}

func aggregateHourly(hourly AirQualityHourly) models.AirQualitySnapshot {
	return models.AirQualitySnapshot{
		PM10Avg: stats.AveragePtr(hourly.PM10),
		PM10Max: stats.MaximumPtr(hourly.PM10),
		PM25Avg: stats.AveragePtr(hourly.PM25),
		PM25Max: stats.MaximumPtr(hourly.PM25),
	}
}
