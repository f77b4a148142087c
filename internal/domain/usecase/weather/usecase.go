package weather

import (
	"context"
	"errors"

	"go-weather/internal/domain/model"
)

var (
	// ErrNoCityAvailable is returned when no city was given and there is no favorite to fall back to.
	ErrNoCityAvailable = errors.New("no city entered and no favorite cities available")
	// ErrInvalidDays is returned for a forecast window outside 1..5 days.
	ErrInvalidDays = errors.New("days must be between 1 and 5")
)

type UseCase interface {
	// GetWeather looks up the current weather of city, or of the top favorite when city is blank.
	// An unknown city is not an error: the report carries "City not found".
	GetWeather(ctx context.Context, city string) (*model.WeatherReport, error)

	// GetForecast returns the forecast series of city, or of the top favorite when city is blank.
	// days limits the series to the first days*8 samples; 0 keeps all of them.
	GetForecast(ctx context.Context, city string, days int) (*model.ForecastSeries, error)
}
