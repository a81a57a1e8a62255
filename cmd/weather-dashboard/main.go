package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"weather-dashboard/config"
	"weather-dashboard/internal/app"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard
// @version 1.0.0
// @description Historical weather lookups by city and date, live weather for a searched city, and a current-conditions card with a seven day forecast.
// @description Pages are server rendered and updated with htmx fragments; the JSON endpoints back the same data.

// @contact.name Weather Dashboard Support
// @contact.url https://github.com/your-username/weather-dashboard

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Historical
// @tag.description Historical weather lookups and exports
// @tag.name Forecast
// @tag.description Simulated current weather and forecast
// @tag.name Location
// @tag.description Geolocation and city name helpers
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	// the hook parses JSON records
	if cnf.Sentry.DSN != "" && cnf.Log.Format != "console" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug || cnf.IsDevelopment(), cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	dashboard, err := app.New(cnf, l)
	if err != nil {
		l.Fatal("cannot build the application", map[string]any{"err": err.Error()})
	}

	if err := dashboard.Start(); err != nil {
		l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)

		_ = dashboard.Close(context.Background())
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case err := <-dashboard.Errors():
		if err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
		}
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
