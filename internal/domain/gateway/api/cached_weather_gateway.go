package api

import (
	"context"
	"strings"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// ResponseCache is the subset of pkg/redis.Cache used by the cached gateway.
type ResponseCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// cachedWeatherGateway is a read-through cache in front of another WeatherGateway.
// Cache failures fall back to the wrapped gateway; errors are never cached.
type cachedWeatherGateway struct {
	next          WeatherGateway
	currentCache  ResponseCache
	forecastCache ResponseCache
}

// NewCachedWeatherGateway wraps next with the given caches
func NewCachedWeatherGateway(next WeatherGateway, currentCache ResponseCache, forecastCache ResponseCache) WeatherGateway {
	return &cachedWeatherGateway{
		next:          next,
		currentCache:  currentCache,
		forecastCache: forecastCache,
	}
}

func (c *cachedWeatherGateway) GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	key := cacheKey(city)

	var cached external.CurrentWeatherResponse
	if c.lookup(ctx, c.currentCache, key, &cached) {
		return &cached, nil
	}

	response, err := c.next.GetCurrentWeather(ctx, city)
	if err != nil {
		return nil, err
	}
	c.store(ctx, c.currentCache, key, response)
	return response, nil
}

func (c *cachedWeatherGateway) GetForecast(ctx context.Context, city string) (*external.ForecastResponse, error) {
	key := cacheKey(city)

	var cached external.ForecastResponse
	if c.lookup(ctx, c.forecastCache, key, &cached) {
		return &cached, nil
	}

	response, err := c.next.GetForecast(ctx, city)
	if err != nil {
		return nil, err
	}
	c.store(ctx, c.forecastCache, key, response)
	return response, nil
}

func (c *cachedWeatherGateway) lookup(ctx context.Context, cache ResponseCache, key string, dest interface{}) bool {
	found, err := cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn(msg.GetMessage("weather.cache-error", key, err))
		return false
	}
	if found {
		log.Debug(msg.GetMessage("weather.cache-hit", key))
	}
	return found
}

func (c *cachedWeatherGateway) store(ctx context.Context, cache ResponseCache, key string, value interface{}) {
	if err := cache.Set(ctx, key, value); err != nil {
		log.Warn(msg.GetMessage("weather.cache-error", key, err))
	}
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
