package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/file"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// run parses args and dispatches to a sub-command. It returns the process exit code.
func run(ctx context.Context, args []string, out io.Writer, newApp func() (*application, error)) int {
	flags := pflag.NewFlagSet("go-weather", pflag.ContinueOnError)
	flags.SetOutput(out)
	days := flags.IntP("days", "d", 0, "forecast only: days to show (1-5), all when omitted")
	flags.Usage = func() {
		fmt.Fprintln(out, msg.GetMessage("app.usage"))
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	positional := flags.Args()
	if len(positional) == 0 {
		flags.Usage()
		return exitUsage
	}

	command, rest := positional[0], positional[1:]
	if flags.Changed("days") && command != "forecast" {
		fmt.Fprintln(out, msg.GetMessage("app.days-forecast-only", command))
		return exitUsage
	}

	app, err := newApp()
	if err != nil {
		fmt.Fprintln(out, err)
		return exitError
	}
	defer app.Close()

	switch command {
	case "weather":
		return app.printWeather(ctx, out, joinCity(rest))
	case "forecast":
		return app.printForecast(ctx, out, joinCity(rest), *days)
	case "favorites":
		return app.runFavorites(out, rest)
	case "serve":
		if err := app.serve(ctx); err != nil {
			fmt.Fprintln(out, err)
			return exitError
		}
		return exitOK
	default:
		fmt.Fprintln(out, msg.GetMessage("app.unknown-command", command))
		flags.Usage()
		return exitUsage
	}
}

// joinCity lets multi-word cities be passed without quotes
func joinCity(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func (app *application) printWeather(ctx context.Context, out io.Writer, city string) int {
	report, err := app.weatherUseCase.GetWeather(ctx, city)
	if err != nil {
		return printLookupError(out, err)
	}

	if report.Notice != "" {
		fmt.Fprintln(out, report.Notice)
	}
	fmt.Fprint(out, report.Text)
	if !report.Found {
		fmt.Fprintln(out)
		return exitError
	}
	return exitOK
}

func (app *application) printForecast(ctx context.Context, out io.Writer, city string, days int) int {
	series, err := app.weatherUseCase.GetForecast(ctx, city, days)
	if err != nil {
		return printLookupError(out, err)
	}

	if series.Notice != "" {
		fmt.Fprintln(out, series.Notice)
	}
	fmt.Fprint(out, weather.RenderForecast(series))
	return exitOK
}

func printLookupError(out io.Writer, err error) int {
	switch {
	case errors.Is(err, weather.ErrNoCityAvailable):
		fmt.Fprintln(out, msg.GetMessage("weather.no-city"))
	case errors.Is(err, api.ErrCityNotFound):
		fmt.Fprintln(out, weather.CityNotFoundText)
	default:
		fmt.Fprintln(out, err)
	}
	return exitError
}

func (app *application) runFavorites(out io.Writer, args []string) int {
	if len(args) == 0 {
		args = []string{"list"}
	}

	action, city := args[0], joinCity(args[1:])
	switch action {
	case "list":
		cities := app.favoriteUseCase.ListFavorites()
		if len(cities) == 0 {
			fmt.Fprintln(out, msg.GetMessage("favorite.empty-list"))
			return exitOK
		}
		for _, c := range cities {
			fmt.Fprintln(out, c)
		}
		return exitOK

	case "top":
		top, ok := app.favoriteUseCase.TopFavorite()
		if !ok {
			fmt.Fprintln(out, msg.GetMessage("favorite.empty-list"))
			return exitError
		}
		fmt.Fprintln(out, top)
		return exitOK

	case "add":
		added, err := app.favoriteUseCase.AddFavorite(city)
		if errors.Is(err, file.ErrEmptyCity) {
			fmt.Fprintln(out, msg.GetMessage("favorite.empty-city"))
			return exitError
		}
		if err != nil {
			fmt.Fprintln(out, err)
			return exitError
		}
		if !added {
			fmt.Fprintln(out, msg.GetMessage("favorite.already-exists", city))
			return exitOK
		}
		fmt.Fprintln(out, msg.GetMessage("favorite.added", city))
		return exitOK

	case "remove":
		err := app.favoriteUseCase.RemoveFavorite(city)
		if errors.Is(err, file.ErrFavoriteNotFound) {
			fmt.Fprintln(out, msg.GetMessage("favorite.not-found", city))
			return exitError
		}
		if err != nil {
			fmt.Fprintln(out, err)
			return exitError
		}
		fmt.Fprintln(out, msg.GetMessage("favorite.removed", city))
		return exitOK

	default:
		fmt.Fprintln(out, msg.GetMessage("app.unknown-command", "favorites "+action))
		return exitUsage
	}
}
