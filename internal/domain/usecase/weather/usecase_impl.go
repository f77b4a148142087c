package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/file"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

// samplesPerDay is the number of 3-hour forecast steps in a day
const samplesPerDay = 8

const maxForecastDays = 5

type weatherUseCase struct {
	apiGateway      api.WeatherGateway
	favoriteGateway file.FavoriteGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, favoriteGateway file.FavoriteGateway) UseCase {
	return &weatherUseCase{
		apiGateway:      apiGateway,
		favoriteGateway: favoriteGateway,
	}
}

// GetWeather looks up the current weather of city or of the top favorite
func (uc *weatherUseCase) GetWeather(ctx context.Context, city string) (*model.WeatherReport, error) {
	city, usedFavorite, err := uc.resolveCity(city)
	if err != nil {
		return nil, err
	}

	report := &model.WeatherReport{City: city}
	if usedFavorite {
		report.Notice = msg.GetMessage("weather.top-favorite-weather", city)
	}

	log.Debug(msg.GetMessage("weather.request", "current weather", city))
	response, err := uc.apiGateway.GetCurrentWeather(ctx, city)
	if errors.Is(err, api.ErrCityNotFound) {
		report.Text = FormatWeather(nil)
		return report, nil
	}
	if err != nil {
		log.Error(msg.GetMessage("weather.request-failed", "current weather", city, err))
		return nil, fmt.Errorf("failed to get weather for %s: %w", city, err)
	}

	report.Found = true
	report.Text = FormatWeather(response)
	report.Reading = ToReading(response)
	report.Reading.City = city
	return report, nil
}

// GetForecast returns the forecast series of city or of the top favorite
func (uc *weatherUseCase) GetForecast(ctx context.Context, city string, days int) (*model.ForecastSeries, error) {
	if !numberutils.IsIntInRange(days, 0, maxForecastDays) {
		return nil, ErrInvalidDays
	}

	city, usedFavorite, err := uc.resolveCity(city)
	if err != nil {
		return nil, err
	}

	log.Debug(msg.GetMessage("weather.request", "forecast", city))
	response, err := uc.apiGateway.GetForecast(ctx, city)
	if err != nil {
		if !errors.Is(err, api.ErrCityNotFound) {
			log.Error(msg.GetMessage("weather.request-failed", "forecast", city, err))
		}
		return nil, fmt.Errorf("failed to get forecast for %s: %w", city, err)
	}

	series, err := ExtractForecast(response)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast for %s: %w", city, err)
	}

	series.City = city
	if usedFavorite {
		series.Notice = msg.GetMessage("weather.top-favorite-forecast", city)
	}
	if days > 0 && len(series.Points) > days*samplesPerDay {
		series.Points = series.Points[:days*samplesPerDay]
	}
	return series, nil
}

// resolveCity falls back to the top favorite when city is blank
func (uc *weatherUseCase) resolveCity(city string) (string, bool, error) {
	city = strings.TrimSpace(city)
	if city != "" {
		return city, false, nil
	}

	top, ok := uc.favoriteGateway.Top()
	if !ok {
		return "", false, ErrNoCityAvailable
	}
	return top, true, nil
}
