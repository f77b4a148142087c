package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-weather/configs"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/file"
	"go-weather/internal/domain/usecase/favorite"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

// application holds the wired use cases shared by the CLI and the HTTP server
type application struct {
	weatherUseCase  weather.UseCase
	favoriteUseCase favorite.UseCase
	healthUseCase   health.UseCase
	redisClient     *redis.Client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	log.Debugw(msg.GetMessage("app.start"), "application", configs.Env.ApplicationName)
	code := run(ctx, os.Args[1:], os.Stdout, newApplication)

	stop()
	log.Sync()
	os.Exit(code)
}

func newApplication() (*application, error) {
	// Init Gateways
	favoritesFile := resource.GetString("app.favorites.file")
	favoriteGateway, err := file.NewJSONFavoriteGateway(favoritesFile)
	if err != nil {
		log.Error(msg.GetMessage("favorite.load-failed", favoritesFile, err))
		return nil, err
	}

	mode, err := api.ParseResponseMode(resource.GetString("app.openweather.mode"))
	if err != nil {
		return nil, err
	}

	timeout := resource.GetDuration("app.openweather.timeout")
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.openweather.base-url"),
		resource.GetString("app.openweather.api-key"),
		mode,
		api.RateLimit{
			RPS:   resource.GetFloat64("app.openweather.rate-limit.rps"),
			Burst: resource.GetInt("app.openweather.rate-limit.burst"),
		},
		httpclient.ClientOptions{
			ConnectionTimeout: timeout,
			ReadTimeout:       timeout,
			Logger:            httpclient.ZapLogger{},
		},
	)

	app := &application{}
	var cachePinger health.CachePinger
	if resource.GetBool("app.cache.enabled") {
		client, err := newRedisClient()
		if err != nil {
			return nil, err
		}

		ttl := resource.GetDuration("app.cache.ttl")
		weatherGateway = api.NewCachedWeatherGateway(weatherGateway,
			redis.NewCache(client, "current-weather", ttl),
			redis.NewCache(client, "forecast", ttl))

		app.redisClient = client
		cachePinger = client
	}

	// Init UseCases
	app.weatherUseCase = weather.NewWeatherUseCase(weatherGateway, favoriteGateway)
	app.favoriteUseCase = favorite.NewFavoriteUseCase(favoriteGateway)
	app.healthUseCase = health.NewHealthUseCase(favoriteGateway, cachePinger)
	return app, nil
}

func newRedisClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	return redis.NewClient(config)
}

func (app *application) Close() {
	if app.redisClient == nil {
		return
	}
	if err := app.redisClient.Close(); err != nil {
		log.Warnf("Fail to close redis client: %v", err)
	}
}
