package models

import "fmt"

type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Timezone  string
}

func (l Location) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f tz: %s", l.Latitude, l.Longitude, l.Timezone)
}
