package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// CityNotFoundText is displayed instead of a report for an unknown city
const CityNotFoundText = "City not found"

const (
	forecastLabelLayout = "2006-01-02 15:04:05"
	chartBarWidth       = 40
)

// FormatWeather renders a current-weather response as the fixed multi-line report.
// A nil or not-found response yields CityNotFoundText.
func FormatWeather(response *external.CurrentWeatherResponse) string {
	if response == nil || response.Cod.IsNotFound() {
		return CityNotFoundText
	}

	reading := ToReading(response)

	var b strings.Builder
	fmt.Fprintf(&b, "Temperature: %sK\n", formatNumber(reading.Temperature))
	fmt.Fprintf(&b, "Pressure: %s hPa\n", formatNumber(reading.Pressure))
	fmt.Fprintf(&b, "Humidity: %s%%\n", formatNumber(reading.Humidity))
	fmt.Fprintf(&b, "Weather: %s\n", reading.Description)
	fmt.Fprintf(&b, "Wind Speed: %s m/s\n", formatNumber(reading.WindSpeed))
	return b.String()
}

// ToReading flattens a current-weather response
func ToReading(response *external.CurrentWeatherResponse) *model.WeatherReading {
	reading := &model.WeatherReading{
		City:        response.Name,
		Temperature: response.Main.Temp,
		Pressure:    response.Main.Pressure,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
	}
	if len(response.Weather) > 0 {
		reading.Description = response.Weather[0].Description
	}
	return reading
}

// ExtractForecast returns one point per forecast list entry, in input order
func ExtractForecast(response *external.ForecastResponse) (*model.ForecastSeries, error) {
	if response == nil || response.Cod.IsNotFound() {
		return nil, api.ErrCityNotFound
	}

	points := make([]model.ForecastPoint, 0, len(response.List))
	for _, item := range response.List {
		timestamp := time.Unix(item.Dt, 0).UTC()
		label := item.DtTxt
		if label == "" {
			label = timestamp.Format(forecastLabelLayout)
		}
		points = append(points, model.ForecastPoint{
			Timestamp:   timestamp,
			Label:       label,
			Temperature: item.Main.Temp,
		})
	}

	return &model.ForecastSeries{
		City:   response.City.Name,
		Points: points,
	}, nil
}

// RenderForecast draws the series as a text chart, one row per sample
func RenderForecast(series *model.ForecastSeries) string {
	var b strings.Builder
	fmt.Fprintf(&b, "5-Day Weather Forecast: %s\n", series.City)
	if len(series.Points) == 0 {
		return b.String()
	}

	low, high := math.Inf(1), math.Inf(-1)
	for _, point := range series.Points {
		low = math.Min(low, point.Temperature)
		high = math.Max(high, point.Temperature)
	}

	for _, point := range series.Points {
		fmt.Fprintf(&b, "%-19s %9.2fK %s\n", point.Label, point.Temperature, strings.Repeat("#", barLength(point.Temperature, low, high)))
	}
	return b.String()
}

func barLength(value, low, high float64) int {
	if high <= low {
		return chartBarWidth / 2
	}
	return 1 + int(math.Round((value-low)/(high-low)*float64(chartBarWidth-1)))
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
