package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.GET("/forecast", controller.GetForecast)
}

// GetWeather godoc
// @Summary Get current weather
// @Description Current weather of a city. Without city the top favorite city is used.
// @Tags weather
// @Produce json
// @Param city query string false "City name"
// @Success 200 {object} model.WeatherReport "Weather report, found=false when the city does not exist"
// @Failure 400 {object} map[string]string "No city entered and no favorite cities available"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	report, err := controller.useCase.GetWeather(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetForecast godoc
// @Summary Get 5-day forecast
// @Description Forecast temperature series of a city in 3-hour steps. Without city the top favorite city is used.
// @Tags weather
// @Produce json
// @Param city query string false "City name"
// @Param days query int false "Number of days (1-5), all when omitted"
// @Success 200 {object} model.ForecastSeries "Forecast series"
// @Failure 400 {object} map[string]string "Invalid days or no city available"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	days, err := numberutils.ToIntWithDefault(c.QueryParam("days"), 0)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": weather.ErrInvalidDays.Error()})
	}

	series, err := controller.useCase.GetForecast(c.Request().Context(), c.QueryParam("city"), days)
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, series)
}

func weatherError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, weather.ErrNoCityAvailable):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.no-city")})
	case errors.Is(err, weather.ErrInvalidDays):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, api.ErrCityNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("weather.city-not-found")})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
}
