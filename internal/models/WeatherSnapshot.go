package models

// WeatherSnapshot is the single forecast day returned by the weather provider.
// Nil fields were not reported upstream.
type WeatherSnapshot struct {
	Date    string   `json:"date" example:"2024-03-05"`
	TempMax *float64 `json:"temp_max,omitempty" example:"24.7"`
	TempMin *float64 `json:"temp_min,omitempty" example:"18.2"`
	Precip  *float64 `json:"precip,omitempty" example:"0.4"`
	WindMax *float64 `json:"wind_max,omitempty" example:"5.1"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
