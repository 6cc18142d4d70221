package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aqi-notifier/internal/models"
	"aqi-notifier/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com"
	forecastPath     = "/v1/forecast"
)

var dailyVariables = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"wind_speed_10m_max",
}

type OpenMeteoRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenMeteoRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	return &OpenMeteoRepository{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

// OpenMeteoDaily is the "daily" object of the forecast response. Malformed entries decode as gaps.
type OpenMeteoDaily struct {
	Time             Labels `json:"time"`
	Temperature2mMax Series `json:"temperature_2m_max"`
	Temperature2mMin Series `json:"temperature_2m_min"`
	PrecipitationSum Series `json:"precipitation_sum"`
	WindSpeed10mMax  Series `json:"wind_speed_10m_max"`
}

// FetchWeather requests a single forecast day and returns its values.
func (o *OpenMeteoRepository) FetchWeather(ctx context.Context, loc models.Location) (models.WeatherSnapshot, error) {
	params := locationParams(loc)
	params.Set("daily", strings.Join(dailyVariables, ","))
	params.Set("wind_speed_unit", "ms")
	params.Set("temperature_unit", "celsius")
	params.Set("precipitation_unit", "mm")

	var response struct {
		Daily OpenMeteoDaily `json:"daily"`
	}

	if err := getJSON(ctx, o.httpClient, o.l, o.Name(), o.baseURL+forecastPath, params, &response); err != nil {
		return models.WeatherSnapshot{}, err
	}

	o.l.Info("parsed openmeteo forecast", map[string]any{
		"days": len(response.Daily.Time),
	})

	return firstDay(response.Daily), nil
}

func firstDay(daily OpenMeteoDaily) models.WeatherSnapshot {
	var date string
	if len(daily.Time) > 0 {
		date = daily.Time[0]
	}

	return models.WeatherSnapshot{
		Date:    date,
		TempMax: first(daily.Temperature2mMax),
		TempMin: first(daily.Temperature2mMin),
		Precip:  first(daily.PrecipitationSum),
		WindMax: first(daily.WindSpeed10mMax),
	}
}

func first(series Series) *float64 {
	if len(series) == 0 {
		return nil
	}
	return series[0]
}

func locationParams(loc models.Location) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Set("forecast_days", "1")
	params.Set("timezone", loc.Timezone)
	return params
}

// getJSON performs a GET and decodes a 2xx body into out.
// Any other status is returned as *models.UpstreamError.
func getJSON(
	ctx context.Context,
	client HTTPClient,
	l *logger.Logger,
	provider string,
	endpoint string,
	params url.Values,
	out any,
) error {
	u := endpoint + "?" + params.Encode()

	l.Info("making "+provider+" API request", map[string]any{
		"url": u,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	l.Info("received "+provider+" API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &models.UpstreamError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
