// Package main provides the anime-picker CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"anime_picker/internal/config"
	"anime_picker/internal/domain"
	"anime_picker/internal/publisher"
	"anime_picker/internal/service"
	"anime_picker/internal/source/anilist"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "anime-picker",
		Version: version,
		Usage:   "Pick a random anime from AniList and explore its series timeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to config file (empty for defaults)",
				Sources: cli.EnvVars("ANIME_PICKER_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			pickCommand(),
			timelineCommand(),
			serveCommand(),
			scheduleCommand(),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env is the wiring shared by every command.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	gateway   *anilist.Client
	publisher service.Publisher
}

func setupEnv(cmd *cli.Command) (*env, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)

	gateway := anilist.New(anilist.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, logger)

	e := &env{cfg: cfg, logger: logger, gateway: gateway}

	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		e.publisher = rabbitMQ
		logger.Info("pick publishing enabled", "exchange", cfg.RabbitMQ.Exchange)
	}

	return e, nil
}

func (e *env) Close() {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Close(); err != nil {
		e.logger.Warn("failed to close publisher", "error", err)
	}
}

func (e *env) sampler() *service.Sampler {
	s := e.cfg.Sampling
	return service.NewSampler(e.gateway, e.publisher, e.logger, service.SamplerConfig{
		PerPage: s.PerPage,
		Sort:    s.Sort,
		Bounds:  domain.YearBounds{Min: s.MinYear, Max: s.MaxYear},
		Retry: service.RetryPolicy{
			MaxAttempts:    s.Retry.MaxAttempts,
			InitialBackoff: s.Retry.InitialBackoff,
			MaxBackoff:     s.Retry.MaxBackoff,
		},
	})
}

func (e *env) timeline() *service.TimelineService {
	return service.NewTimelineService(e.gateway, e.logger)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	// stdout carries command output
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
