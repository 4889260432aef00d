package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type cityQuery struct {
	City string `form:"city" binding:"required,city"`
}

// ForecastDayResponse is one aggregated forecast day, rounded for display
type ForecastDayResponse struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// WeatherResponse represents the HTTP response for a dashboard search
type WeatherResponse struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	TempF       float64 `json:"temperature_f"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Visibility  string  `json:"visibility"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`

	Forecast          []ForecastDayResponse `json:"forecast"`
	ForecastAvailable bool                  `json:"forecast_available"`

	Status    string    `json:"status"`
	FetchedAt time.Time `json:"fetched_at"`
}

// RawWeatherResponse is the verbatim export of the provider payloads
type RawWeatherResponse struct {
	Current        json.RawMessage `json:"current"`
	ForecastSample json.RawMessage `json:"forecast_sample"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	dashboard, ok := s.search(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newWeatherResponse(dashboard))
}

// getRawWeather handles GET /api/weather/raw requests
func (s *HTTPServerAdapter) getRawWeather(c *gin.Context) {
	dashboard, ok := s.search(c)
	if !ok {
		return
	}

	forecast := dashboard.Snapshot.Forecast
	if len(forecast) == 0 {
		forecast = json.RawMessage("null")
	}
	c.JSON(http.StatusOK, RawWeatherResponse{
		Current:        dashboard.Snapshot.Raw,
		ForecastSample: forecast,
	})
}

func (s *HTTPServerAdapter) search(c *gin.Context) (*weather.Dashboard, bool) {
	var query cityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return nil, false
	}

	dashboard, err := s.weatherUseCase.Search(c.Request.Context(), weather.SearchRequest{City: query.City})
	if err != nil {
		s.logger.Warn("Weather search failed", ports.F("city", query.City), ports.F("error", err))
		s.handleError(c, err)
		return nil, false
	}
	return dashboard, true
}

func newWeatherResponse(d *weather.Dashboard) WeatherResponse {
	snap := d.Snapshot

	days := make([]ForecastDayResponse, 0, len(d.Days))
	for _, day := range d.Days {
		rounded := day.Rounded()
		days = append(days, ForecastDayResponse{
			Date:  rounded.Date,
			Label: rounded.Weekday(),
			Min:   rounded.Min,
			Max:   rounded.Max,
		})
	}

	return WeatherResponse{
		City:              snap.City,
		Country:           snap.Country,
		Location:          snap.Location(),
		Temperature:       snap.Temperature,
		TempF:             snap.TemperatureInFahrenheit(),
		FeelsLike:         snap.FeelsLike,
		Humidity:          snap.Humidity,
		Pressure:          snap.Pressure,
		WindSpeed:         snap.WindSpeed,
		Visibility:        snap.VisibilityLabel(),
		Category:          snap.Category,
		Description:       snap.Description,
		Icon:              snap.Icon(),
		Forecast:          days,
		ForecastAvailable: d.ForecastAvailable,
		Status:            d.Status,
		FetchedAt:         snap.FetchedAt,
	}
}
