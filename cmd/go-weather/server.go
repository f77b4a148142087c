package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// newServer registers middleware and routes under the configured context path
func (app *application) newServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath
	api := e.Group(contextPath)

	// Init Controllers
	controller.NewHealthController(api, app.healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(api, app.weatherUseCase).InitWeatherRoutes()
	controller.NewFavoriteController(api, app.favoriteUseCase).InitFavoriteRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// serve runs the HTTP API until ctx is cancelled
func (app *application) serve(ctx context.Context) error {
	e := app.newServer()

	// Init Schedule
	if resource.GetBool("app.schedule.favorites-refresh.enabled") {
		scheduler := schedule.NewFavoriteScheduler(app.weatherUseCase, app.favoriteUseCase,
			resource.GetString("app.schedule.favorites-refresh.cron"))
		if err := scheduler.InitFavoriteScheduleTasks(); err != nil {
			return err
		}
		defer scheduler.Stop()
	} else {
		log.Info(msg.GetMessage("schedule.favorites-refresh.disabled"))
	}

	port := resource.GetString("app.server.port")
	errCh := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info(msg.GetMessage("app.stopped"))
	return nil
}
