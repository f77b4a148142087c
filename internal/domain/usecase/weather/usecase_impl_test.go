package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	_ "go-weather/configs"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model/external"
)

type stubWeatherGateway struct {
	current   *external.CurrentWeatherResponse
	forecast  *external.ForecastResponse
	err       error
	lastCity  string
	callCount int
}

func (s *stubWeatherGateway) GetCurrentWeather(_ context.Context, city string) (*external.CurrentWeatherResponse, error) {
	s.lastCity = city
	s.callCount++
	return s.current, s.err
}

func (s *stubWeatherGateway) GetForecast(_ context.Context, city string) (*external.ForecastResponse, error) {
	s.lastCity = city
	s.callCount++
	return s.forecast, s.err
}

type stubFavoriteGateway struct {
	cities []string
}

func (s *stubFavoriteGateway) Load() error { return nil }
func (s *stubFavoriteGateway) Save() error { return nil }
func (s *stubFavoriteGateway) Add(city string) (bool, error) {
	s.cities = append(s.cities, city)
	return true, nil
}
func (s *stubFavoriteGateway) Remove(string) error { return nil }
func (s *stubFavoriteGateway) List() []string      { return s.cities }
func (s *stubFavoriteGateway) Top() (string, bool) {
	if len(s.cities) == 0 {
		return "", false
	}
	return s.cities[0], true
}
func (s *stubFavoriteGateway) Location() string { return "memory" }

func forecastWith(n int) *external.ForecastResponse {
	resp := &external.ForecastResponse{Cod: "200"}
	for i := 0; i < n; i++ {
		item := external.ForecastItemDTO{Dt: int64(i * 10800)}
		item.Main.Temp = float64(270 + i)
		resp.List = append(resp.List, item)
	}
	return resp
}

func TestGetWeatherForTypedCity(t *testing.T) {
	gateway := &stubWeatherGateway{current: londonWeather()}
	uc := NewWeatherUseCase(gateway, &stubFavoriteGateway{cities: []string{"Paris"}})

	report, err := uc.GetWeather(context.Background(), "  London ")
	require.NoError(t, err)
	require.Equal(t, "London", gateway.lastCity)
	require.True(t, report.Found)
	require.Empty(t, report.Notice)
	require.Equal(t, FormatWeather(londonWeather()), report.Text)
	require.Equal(t, 280.32, report.Reading.Temperature)
	require.Equal(t, "light intensity drizzle", report.Reading.Description)
}

func TestGetWeatherFallsBackToTopFavorite(t *testing.T) {
	gateway := &stubWeatherGateway{current: londonWeather()}
	uc := NewWeatherUseCase(gateway, &stubFavoriteGateway{cities: []string{"Paris", "Rome"}})

	report, err := uc.GetWeather(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Paris", gateway.lastCity)
	require.Equal(t, "Paris", report.City)
	require.Equal(t, "No city entered. Showing weather for top favorite city: Paris", report.Notice)
}

func TestGetWeatherWithoutCityOrFavorites(t *testing.T) {
	gateway := &stubWeatherGateway{}
	uc := NewWeatherUseCase(gateway, &stubFavoriteGateway{})

	_, err := uc.GetWeather(context.Background(), " ")
	require.ErrorIs(t, err, ErrNoCityAvailable)
	require.Zero(t, gateway.callCount)
}

func TestGetWeatherCityNotFound(t *testing.T) {
	uc := NewWeatherUseCase(&stubWeatherGateway{err: api.ErrCityNotFound}, &stubFavoriteGateway{})

	report, err := uc.GetWeather(context.Background(), "Atlantis")
	require.NoError(t, err)
	require.False(t, report.Found)
	require.Equal(t, "City not found", report.Text)
	require.Nil(t, report.Reading)
}

func TestGetWeatherPropagatesFailures(t *testing.T) {
	upstream := errors.New("connection reset")
	uc := NewWeatherUseCase(&stubWeatherGateway{err: upstream}, &stubFavoriteGateway{})

	_, err := uc.GetWeather(context.Background(), "London")
	require.ErrorIs(t, err, upstream)
}

func TestGetForecastReturnsEverySample(t *testing.T) {
	uc := NewWeatherUseCase(&stubWeatherGateway{forecast: forecastWith(40)}, &stubFavoriteGateway{})

	series, err := uc.GetForecast(context.Background(), "London", 0)
	require.NoError(t, err)
	require.Equal(t, "London", series.City)
	require.Len(t, series.Points, 40)
	require.Equal(t, float64(270), series.Points[0].Temperature)
	require.Equal(t, float64(309), series.Points[39].Temperature)
}

func TestGetForecastLimitsDays(t *testing.T) {
	uc := NewWeatherUseCase(&stubWeatherGateway{forecast: forecastWith(40)}, &stubFavoriteGateway{})

	series, err := uc.GetForecast(context.Background(), "London", 2)
	require.NoError(t, err)
	require.Len(t, series.Points, 16)

	_, err = uc.GetForecast(context.Background(), "London", 6)
	require.ErrorIs(t, err, ErrInvalidDays)
	_, err = uc.GetForecast(context.Background(), "London", -1)
	require.ErrorIs(t, err, ErrInvalidDays)
}

func TestGetForecastFallsBackToTopFavorite(t *testing.T) {
	gateway := &stubWeatherGateway{forecast: forecastWith(3)}
	uc := NewWeatherUseCase(gateway, &stubFavoriteGateway{cities: []string{"Lima"}})

	series, err := uc.GetForecast(context.Background(), "", 0)
	require.NoError(t, err)
	require.Equal(t, "Lima", gateway.lastCity)
	require.Equal(t, "No city entered. Showing 5-day forecast for top favorite city: Lima", series.Notice)
}

func TestGetForecastCityNotFound(t *testing.T) {
	uc := NewWeatherUseCase(&stubWeatherGateway{err: api.ErrCityNotFound}, &stubFavoriteGateway{})

	_, err := uc.GetForecast(context.Background(), "Atlantis", 0)
	require.ErrorIs(t, err, api.ErrCityNotFound)
}
