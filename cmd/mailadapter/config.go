package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailadapter/pkg/logger"
	"github.com/dmitrymomot/mailadapter/pkg/mailer/resend"
)

// config is the CLI configuration read from the environment.
type config struct {
	Resend   resend.Config
	Sentry   logger.SentryConfig
	BaseURL  string `env:"RESEND_BASE_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// loadConfig loads envFile (or ./.env when present) and parses the environment.
// Variables already set in the environment win over the file.
func loadConfig(envFile string) (config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return config{}, fmt.Errorf("load env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// app holds state shared by subcommands after the root pre-run.
type app struct {
	log *slog.Logger
	cfg config
}

func (a *app) init(envFile, logLevel string, stderr io.Writer) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	a.cfg = cfg
	a.log = logger.NewWithSentry(cfg.Sentry,
		logger.WithOutput(stderr),
		logger.WithLevel(level),
		logger.WithFormat(logger.FormatText),
	)
	return nil
}

func (a *app) adapter() (*resend.Adapter, error) {
	opts := []resend.Option{resend.WithLogger(a.log)}
	if a.cfg.BaseURL != "" {
		opts = append(opts, resend.WithBaseURL(a.cfg.BaseURL))
	}
	return resend.New(a.cfg.Resend, opts...)
}
