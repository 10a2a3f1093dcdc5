package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-bot/config"
	v1 "weather-bot/internal/controllers/http/v1"
	"weather-bot/internal/gateway"
	"weather-bot/internal/repositories"
	"weather-bot/internal/services/bot"
	"weather-bot/internal/services/scraper"
	"weather-bot/internal/services/weather"
	"weather-bot/internal/storage"
	"weather-bot/pkg/httpserver"
	"weather-bot/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	l := logger.NewZapLogger(cnf.AppName, os.Stdout)

	store, err := storage.Open(cnf.DatabasePath, l)
	if err != nil {
		l.Fatal("cannot open database", map[string]any{"path": cnf.DatabasePath, "err": err})
	}
	if err := store.Init(ctx); err != nil {
		l.Fatal("cannot initialize database", map[string]any{"err": err})
	}

	provider := repositories.NewWeatherProvider(cnf, l)
	sender := gateway.NewTwilioSender(cnf.TwilioAccountSID, cnf.TwilioAuthToken, cnf.TwilioWhatsAppFrom, l)

	weatherService := weather.NewService(provider, store, cnf.DefaultCity, cnf.DefaultCountry, l)
	dispatcher := bot.NewDispatcher(weatherService, sender, l)
	scraperService := scraper.New(l)

	app := httpserver.InitFiberServer(cnf.AppName)

	v1.NewRouter(
		app,
		cnf,
		weatherService,
		dispatcher,
		scraperService,
		store,
		l,
	)

	go func() {
		if err := app.Listen(cnf.Host + ":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"host":               cnf.Host,
		"port":               cnf.Port,
		"weather_configured": cnf.WeatherConfigured(),
		"twilio_configured":  cnf.TwilioConfigured(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = store.Close()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
