package models

// AirQualitySnapshot holds the daily aggregates of the hourly particulate series, in µg/m³.
type AirQualitySnapshot struct {
	PM10Avg *float64 `json:"pm10_avg,omitempty" example:"15"`
	PM10Max *float64 `json:"pm10_max,omitempty" example:"30"`
	PM25Avg *float64 `json:"pm25_avg,omitempty" example:"60"`
	PM25Max *float64 `json:"pm25_max,omitempty" example:"90"`
}
