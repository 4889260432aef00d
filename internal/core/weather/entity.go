package weather

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultIcon is shown for unknown or empty weather categories
const DefaultIcon = "🌤️"

var categoryIcons = map[string]string{
	"clear":        "☀️",
	"clouds":       "☁️",
	"rain":         "🌧️",
	"drizzle":      "🌦️",
	"thunderstorm": "⛈️",
	"snow":         "❄️",
	"mist":         "🌫️",
	"fog":          "🌫️",
}

// IconFor maps a weather category to its display icon. It is total: any
// category without a mapping gets DefaultIcon.
func IconFor(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(strings.TrimSpace(category))]; ok {
		return icon
	}
	return DefaultIcon
}

// Snapshot is the normalized view of one current-weather response.
// It is built once per successful fetch by FromPayloads and never updated in place.
type Snapshot struct {
	City    string
	Country string

	Temperature float64
	FeelsLike   float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64

	Visibility      float64
	VisibilityKnown bool

	Category    string
	Description string

	Raw       json.RawMessage
	Forecast  json.RawMessage
	FetchedAt time.Time
}

// Icon returns the display icon for the snapshot's category
func (s Snapshot) Icon() string {
	return IconFor(s.Category)
}

// VisibilityLabel renders visibility in meters, or "unknown" when the provider omitted it
func (s Snapshot) VisibilityLabel() string {
	if !s.VisibilityKnown {
		return "unknown"
	}
	return fmt.Sprintf("%g m", s.Visibility)
}

// Location returns "City, CC", or just the city when the country is unknown
func (s Snapshot) Location() string {
	if s.Country == "" {
		return s.City
	}
	return s.City + ", " + s.Country
}

// TemperatureInFahrenheit converts temperature from Celsius to Fahrenheit
func (s Snapshot) TemperatureInFahrenheit() float64 {
	return s.Temperature*9/5 + 32
}

// ForecastDay is the min/max temperature of one calendar date
type ForecastDay struct {
	Date string
	Min  float64
	Max  float64
}

// Rounded returns a copy with temperatures rounded to one decimal place
func (d ForecastDay) Rounded() ForecastDay {
	return ForecastDay{
		Date: d.Date,
		Min:  roundTenth(d.Min),
		Max:  roundTenth(d.Max),
	}
}

// Weekday renders the date as "Mon 02", falling back to the raw key if it does not parse
func (d ForecastDay) Weekday() string {
	t, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return d.Date
	}
	return t.Format("Mon 02")
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// SearchRequest represents a request for the dashboard of a city
type SearchRequest struct {
	City string
}

// IsValid validates the search request
func (r *SearchRequest) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (r *SearchRequest) NormalizeCity() {
	r.City = strings.TrimSpace(r.City)
}

// Dashboard is everything the presentation layer renders for one search
type Dashboard struct {
	Snapshot          Snapshot
	Days              []ForecastDay
	ForecastAvailable bool
	Status            string
}
