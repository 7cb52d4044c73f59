package logging

import (
	"os"
	"strings"
	"time"

	"github.com/firstoffice/officebooking/config"
	"github.com/rs/zerolog"
)

// New constructs a zerolog logger from config settings.
// Defaults to JSON at info level on stdout when fields are empty.
func New(cfg config.LoggingConfig, app config.AppConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	var output = zerolog.New(os.Stdout)
	if strings.ToLower(strings.TrimSpace(cfg.Format)) == "console" {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return output.
		Level(level).
		With().
		Timestamp().
		Str("app", app.Name).
		Str("env", app.Environment).
		Logger()
}
