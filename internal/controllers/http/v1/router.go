package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-bot/config"
	"weather-bot/internal/services/bot"
	"weather-bot/internal/services/scraper"
	"weather-bot/internal/services/weather"
	"weather-bot/internal/storage"
	"weather-bot/pkg/logger"
)

type routes struct {
	cfg        *config.Config
	weather    *weather.Service
	dispatcher *bot.Dispatcher
	scraper    *scraper.Scraper
	store      *storage.Store
	l          *logger.Logger
}

func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	weatherService *weather.Service,
	dispatcher *bot.Dispatcher,
	scraperService *scraper.Scraper,
	store *storage.Store,
	l *logger.Logger,
) {
	r := &routes{
		cfg:        cfg,
		weather:    weatherService,
		dispatcher: dispatcher,
		scraper:    scraperService,
		store:      store,
		l:          l,
	}

	app.Get("/", r.handleRoot)
	app.Get("/health", r.handleHealth)
	app.Post("/weather", r.handleWeatherCall)
	app.Post("/scrape", r.handleScrapeCall)
	app.Get("/webhook", r.handleWebhookVerify)
	app.Post("/webhook", r.handleWebhook)
}
