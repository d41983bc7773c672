package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-status-bot/config"
	"ulascansenturk/weather-status-bot/internal/providers"
	"ulascansenturk/weather-status-bot/internal/service"
)

func main() {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("failed to parse flags")
	}

	conf, err := config.LoadConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handleSignals(cancel)

	weatherAPIService := providers.NewWeatherAPIService(
		conf.WeatherAPIKey,
		conf.WeatherBaseURL,
		conf.HTTPTimeoutDuration(),
	)
	slackStatusService := providers.NewSlackStatusService(
		conf.SlackToken,
		conf.SlackAPIURL,
		conf.HTTPTimeoutDuration(),
	)

	statusService := service.NewStatusService(conf, weatherAPIService, slackStatusService, logger)

	logger.Info().Msg("Starting status bot")

	// Run logs its own failures; the process exits normally either way.
	_ = statusService.Run(ctx)
}

// handleSignals cancels the in-flight run so pending HTTP calls return early.
func handleSignals(cancelCtx context.CancelFunc) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		s := <-sig
		log.Warn().Str("signal", s.String()).Msg("signal received, aborting run")
		cancelCtx()
	}()
}
