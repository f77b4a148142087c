package api

import (
	"context"
	"errors"

	"go-weather/internal/domain/model/external"
)

// ErrCityNotFound is returned when OpenWeatherMap answers with its not-found sentinel.
var ErrCityNotFound = errors.New("city not found")

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current weather of a city
	GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the 5-day forecast of a city in 3-hour steps
	GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error)
}
