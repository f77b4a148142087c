package api

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/model/external"
)

type memoryCache struct {
	values map[string][]byte
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	data, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

type countingGateway struct {
	currentCalls  int
	forecastCalls int
	err           error
}

func (g *countingGateway) GetCurrentWeather(context.Context, string) (*external.CurrentWeatherResponse, error) {
	g.currentCalls++
	if g.err != nil {
		return nil, g.err
	}
	resp := &external.CurrentWeatherResponse{Cod: "200", Name: "Oslo"}
	resp.Main.Temp = 270.5
	return resp, nil
}

func (g *countingGateway) GetForecast(context.Context, string) (*external.ForecastResponse, error) {
	g.forecastCalls++
	if g.err != nil {
		return nil, g.err
	}
	return &external.ForecastResponse{Cod: "200", List: []external.ForecastItemDTO{{Dt: 1}}}, nil
}

func TestCachedGatewayServesSecondLookupFromCache(t *testing.T) {
	next := &countingGateway{}
	gateway := NewCachedWeatherGateway(next, newMemoryCache(), newMemoryCache())

	first, err := gateway.GetCurrentWeather(context.Background(), "Oslo")
	require.NoError(t, err)
	second, err := gateway.GetCurrentWeather(context.Background(), " oslo ")
	require.NoError(t, err)

	require.Equal(t, 1, next.currentCalls)
	require.Equal(t, first.Main.Temp, second.Main.Temp)

	_, err = gateway.GetForecast(context.Background(), "Oslo")
	require.NoError(t, err)
	_, err = gateway.GetForecast(context.Background(), "Oslo")
	require.NoError(t, err)
	require.Equal(t, 1, next.forecastCalls)
}

func TestCachedGatewayDoesNotCacheNotFound(t *testing.T) {
	next := &countingGateway{err: ErrCityNotFound}
	gateway := NewCachedWeatherGateway(next, newMemoryCache(), newMemoryCache())

	for i := 0; i < 2; i++ {
		_, err := gateway.GetCurrentWeather(context.Background(), "Atlantis")
		require.ErrorIs(t, err, ErrCityNotFound)
	}
	require.Equal(t, 2, next.currentCalls)
}

func TestCachedGatewayFallsBackWhenCacheFails(t *testing.T) {
	next := &countingGateway{}
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	gateway := NewCachedWeatherGateway(next, cache, cache)

	resp, err := gateway.GetCurrentWeather(context.Background(), "Oslo")
	require.NoError(t, err)
	require.Equal(t, "Oslo", resp.Name)
	require.Equal(t, 1, next.currentCalls)
}
