// Package report renders the daily weather and dust digest as plain text.
package report

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"aqi-notifier/internal/models"
	"aqi-notifier/internal/services/eaqi"
	"aqi-notifier/internal/stats"
)

const (
	todayLabel      = "сегодня"
	minGroupedValue = 10000
	lineSeparator   = "\n"
)

var printer = message.NewPrinter(language.Russian)

// section produces one report line, or "" when its data is missing.
type section func() string

// Build returns the report lines in their fixed order. Sections without data are left out.
func Build(weather models.WeatherSnapshot, air *models.AirQualitySnapshot, locationName string) []string {
	sections := []section{
		func() string { return header(locationName, weather.Date) },
		func() string { return temperatureLine(weather.TempMin, weather.TempMax) },
		func() string { return unitLine("🌧️ Осадки: %s мм", weather.Precip) },
		func() string { return unitLine("💨 Ветер: до %s м/с", weather.WindMax) },
	}
	if air != nil {
		sections = append(sections, airSections(*air)...)
	}

	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		if line := s(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Render joins the lines produced by Build.
func Render(weather models.WeatherSnapshot, air *models.AirQualitySnapshot, locationName string) string {
	return strings.Join(Build(weather, air, locationName), lineSeparator)
}

// Verdict is the worst classified level of the snapshot, or nil when neither pollutant was classified.
func Verdict(air models.AirQualitySnapshot) *eaqi.Level {
	return eaqi.Worst(eaqi.Classify(air.PM10Avg, eaqi.PM10), eaqi.Classify(air.PM25Avg, eaqi.PM25))
}

func airSections(air models.AirQualitySnapshot) []section {
	pm10 := eaqi.Classify(air.PM10Avg, eaqi.PM10)
	pm25 := eaqi.Classify(air.PM25Avg, eaqi.PM25)

	return []section{
		func() string { return pollutantLine("PM10", air.PM10Avg, air.PM10Max, pm10) },
		func() string { return pollutantLine("PM2.5", air.PM25Avg, air.PM25Max, pm25) },
		func() string { return verdictLine(eaqi.Worst(pm10, pm25)) },
	}
}

func header(locationName, date string) string {
	label := FormatDate(date)
	if label == "" {
		label = todayLabel
	}
	return fmt.Sprintf("📍 %s — погода на %s (прогноз)", locationName, label)
}

func temperatureLine(minTemp, maxTemp *float64) string {
	lo, hi := FormatNumber(minTemp), FormatNumber(maxTemp)
	if lo == "" || hi == "" {
		return ""
	}
	return fmt.Sprintf("🌡️ Температура: %s…%s °C", lo, hi)
}

func unitLine(format string, value *float64) string {
	v := FormatNumber(value)
	if v == "" {
		return ""
	}
	return fmt.Sprintf(format, v)
}

func pollutantLine(name string, avg, peak *float64, level *eaqi.Level) string {
	a, p := FormatNumber(avg), FormatNumber(peak)
	if a == "" || p == "" {
		return ""
	}
	var suffix string
	if level != nil {
		suffix = " — " + level.Label
	}
	return fmt.Sprintf("🌫️ Пыль (%s): ср. %s мкг/м³, макс. %s мкг/м³%s", name, a, p, suffix)
}

func verdictLine(worst *eaqi.Level) string {
	if worst == nil {
		return ""
	}
	marker, verdict := "✅", "не опасно"
	if worst.IsDangerous() {
		marker, verdict = "⚠️", "опасно"
	}
	return fmt.Sprintf("%s Оценка пыли: %s (%s)", marker, verdict, worst.Label)
}

// FormatDate turns "YYYY-MM-DD" into "DD.MM.YYYY" by reordering the three
// dash-separated parts. Anything else is returned as is.
func FormatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	for _, p := range parts {
		if !isDigits(p) {
			return date
		}
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatNumber renders v with at most one fraction digit in Russian notation.
// Absent or non-finite values render as "".
func FormatNumber(v *float64) string {
	if !stats.IsFinite(v) {
		return ""
	}
	rounded := math.Round(*v*10) / 10

	opts := []number.Option{number.MaxFractionDigits(1)}
	// ru groups thousands only from five integer digits on.
	if math.Abs(rounded) < minGroupedValue {
		opts = append(opts, number.NoSeparator())
	}

	out := printer.Sprint(number.Decimal(rounded, opts...))
	if rounded == 0 && math.Signbit(rounded) {
		return "-" + out
	}
	return out
}
