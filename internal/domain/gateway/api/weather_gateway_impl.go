package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	forecastPath       = "/data/2.5/forecast"
)

// RateLimit bounds the outbound request rate. A zero RPS disables limiting.
type RateLimit struct {
	RPS   float64
	Burst int
}

// ResponseMode is the OpenWeatherMap "mode" body format
type ResponseMode string

const (
	ModeJSON ResponseMode = "json"
	ModeXML  ResponseMode = "xml"
)

// ParseResponseMode accepts json, xml or blank (json)
func ParseResponseMode(value string) (ResponseMode, error) {
	switch mode := ResponseMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "", ModeJSON:
		return ModeJSON, nil
	case ModeXML:
		return ModeXML, nil
	default:
		return "", fmt.Errorf("unsupported openweathermap mode %q", value)
	}
}

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeatherMap
type weatherGatewayImpl struct {
	apiKey     string
	mode       ResponseMode
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, mode ResponseMode, limit RateLimit, clientOptions http.ClientOptions) WeatherGateway {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if limit.RPS > 0 {
		burst := limit.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(limit.RPS), burst)
	}

	if mode == "" {
		mode = ModeJSON
	}
	if mode == ModeXML && clientOptions.DefaultContentType == "" {
		clientOptions.DefaultContentType = "application/xml"
	}

	return &weatherGatewayImpl{
		apiKey:     apiKey,
		mode:       mode,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		limiter:    limiter,
	}
}

// GetCurrentWeather gets the current weather of a city
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	var response *external.CurrentWeatherResponse
	if w.mode == ModeXML {
		successResp, err := w.get(ctx, currentWeatherPath, city, &external.CurrentWeatherXML{})
		if err != nil {
			return nil, err
		}
		response = successResp.(*external.CurrentWeatherXML).ToResponse()
	} else {
		successResp, err := w.get(ctx, currentWeatherPath, city, &external.CurrentWeatherResponse{})
		if err != nil {
			return nil, err
		}
		response = successResp.(*external.CurrentWeatherResponse)
	}

	if response.Cod.IsNotFound() {
		return nil, ErrCityNotFound
	}
	return response, nil
}

// GetForecast gets the 5-day forecast of a city in 3-hour steps
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error) {
	var response *external.ForecastResponse
	if w.mode == ModeXML {
		successResp, err := w.get(ctx, forecastPath, city, &external.ForecastXML{})
		if err != nil {
			return nil, err
		}
		response = successResp.(*external.ForecastXML).ToResponse()
	} else {
		successResp, err := w.get(ctx, forecastPath, city, &external.ForecastResponse{})
		if err != nil {
			return nil, err
		}
		response = successResp.(*external.ForecastResponse)
	}

	if response.Cod.IsNotFound() {
		return nil, ErrCityNotFound
	}
	return response, nil
}

func (w *weatherGatewayImpl) get(ctx context.Context, path string, city string, target any) (any, error) {
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(w.queryParams(city)).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		if errorResponse.Cod.IsNotFound() {
			return nil, ErrCityNotFound
		}
		if errorResponse.Message != "" {
			return nil, fmt.Errorf("openweathermap %s (status %d): %s", path, status, errorResponse.Message)
		}
	}

	var httpErr *http.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
		return nil, ErrCityNotFound
	}

	return nil, fmt.Errorf("openweathermap %s: %w", path, err)
}

func (w *weatherGatewayImpl) queryParams(city string) map[string]string {
	params := map[string]string{
		"appid": w.apiKey,
		"q":     city,
	}
	if w.mode == ModeXML {
		params["mode"] = string(ModeXML)
	}
	return params
}
