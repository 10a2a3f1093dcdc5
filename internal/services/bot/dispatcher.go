package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-bot/internal/gateway"
	"weather-bot/internal/models"
	"weather-bot/internal/services/weather"
	"weather-bot/pkg/logger"
)

const greetingReply = `WhatsApp Weather Bot

Commands:
• Send city name for weather (e.g., 'London' or 'New York')
• 'help' for commands
• 'ping' to test

Example: London`

const helpReply = `Available commands:
• Send city name for weather
• 'ping' - test bot
• 'help' - show commands

Supported: Any city worldwide`

const pingReply = "Weather bot is working!"

const apologyReply = "Sorry, an error occurred. Please try again later."

const workingNotice = "Fetching weather data... Please wait."

// intent pairs a predicate over the normalized message with a handler.
// Intents are evaluated in order; the first match wins.
type intent struct {
	match  func(msg string) bool
	handle func(ctx context.Context, d *Dispatcher, senderID, raw string) string
}

func exactMatch(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if msg == w {
				return true
			}
		}
		return false
	}
}

var intents = []intent{
	{
		match: exactMatch("hello", "hi", "start"),
		handle: func(context.Context, *Dispatcher, string, string) string {
			return greetingReply
		},
	},
	{
		match: exactMatch("help", "?"),
		handle: func(context.Context, *Dispatcher, string, string) string {
			return helpReply
		},
	},
	{
		match: exactMatch("ping"),
		handle: func(context.Context, *Dispatcher, string, string) string {
			return pingReply
		},
	},
	{
		// Anything else is a weather request for the given city.
		match: func(string) bool { return true },
		handle: func(ctx context.Context, d *Dispatcher, senderID, raw string) string {
			return d.handleWeatherRequest(ctx, senderID, raw)
		},
	},
}

// Dispatcher classifies inbound messages and produces reply text.
type Dispatcher struct {
	weather *weather.Service
	sender  gateway.Sender
	l       *logger.Logger
}

func NewDispatcher(weatherService *weather.Service, sender gateway.Sender, l *logger.Logger) *Dispatcher {
	return &Dispatcher{
		weather: weatherService,
		sender:  sender,
		l:       l,
	}
}

// Dispatch maps one inbound message to a reply. It never panics and never
// returns an error: every failure mode has a reply template.
func (d *Dispatcher) Dispatch(ctx context.Context, senderID, text string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Error(fmt.Errorf("dispatch panic for %s: %v", senderID, r))
			reply = apologyReply
		}
	}()

	d.l.Info("handling message", map[string]any{
		"sender":         senderID,
		"message_length": len(text),
	})

	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, in := range intents {
		if in.match(normalized) {
			reply = in.handle(ctx, d, senderID, strings.TrimSpace(text))
			break
		}
	}

	d.l.Info("response prepared", map[string]any{
		"sender":          senderID,
		"response_length": len(reply),
	})

	return reply
}

func (d *Dispatcher) handleWeatherRequest(ctx context.Context, senderID, city string) string {
	d.l.Info("weather request", map[string]any{"sender": senderID, "city": city})

	// Courtesy notice before the potentially slow fetch; not awaited for
	// correctness.
	if _, err := d.sender.Send(ctx, senderID, workingNotice); err != nil {
		d.l.Warning("failed to send working notice", map[string]any{"sender": senderID, "err": err.Error()})
	}

	query, err := models.NewWeatherQuery(city)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			d.l.Warning("invalid city name", map[string]any{"sender": senderID, "reason": vErr.Reason})
			return fmt.Sprintf("Invalid Input\n\nError: %s\n\nPlease send a valid city name (letters only).", vErr.Reason)
		}
		return apologyReply
	}

	report, err := d.weather.Current(ctx, query.City, "")
	if err != nil {
		return fmt.Sprintf("Weather Error\n\nCould not fetch weather for: %s\nError: %s\n\nTry a different city name.", query.City, err.Error())
	}

	return d.weather.FormatMessage(report, nil)
}
