package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-status-bot/config"
	"ulascansenturk/weather-status-bot/internal/providers"
)

const (
	// Threshold is the temperature in °F above which the meeting status is set.
	Threshold = 82.0

	MeetingStatusText = "In a meeting"
	MeetingEmoji      = ":meeting:"
)

var ErrMissingLocation = errors.New("USER_LOCATION not set")

type StatusService interface {
	Run(ctx context.Context) error
}

type statusService struct {
	conf       *config.Config
	weatherAPI providers.WeatherAPIService
	statusAPI  providers.StatusUpdater
	logger     zerolog.Logger
}

func NewStatusService(
	conf *config.Config,
	weatherAPI providers.WeatherAPIService,
	statusAPI providers.StatusUpdater,
	logger zerolog.Logger,
) StatusService {
	return &statusService{
		conf:       conf,
		weatherAPI: weatherAPI,
		statusAPI:  statusAPI,
		logger:     logger,
	}
}

// DecideStatus maps a temperature onto the status to publish. At or below
// the threshold the status text is cleared, whoever set it.
func DecideStatus(temperature float64) providers.StatusUpdate {
	if temperature > Threshold {
		return providers.StatusUpdate{Text: MeetingStatusText, Emoji: MeetingEmoji}
	}
	return providers.StatusUpdate{Text: "", Emoji: MeetingEmoji}
}

// Run performs a single fetch-evaluate-update pass. Failures are logged here;
// a failed status update is not returned since it is the last step.
func (s *statusService) Run(ctx context.Context) error {
	location := s.conf.UserLocation
	if location == "" {
		s.logger.Error().Err(ErrMissingLocation).Msg("USER_LOCATION not set in environment variables")
		return ErrMissingLocation
	}

	weather, err := s.weatherAPI.FetchWeather(ctx, location)
	if err != nil {
		s.logger.Error().Err(err).Str("location", location).Msg("Could not retrieve weather data")
		return err
	}

	temperature, err := weather.Temperature()
	if err != nil {
		s.logger.Error().Err(err).Str("location", location).Msg("Could not read temperature from weather data")
		return err
	}

	s.logger.Info().
		Str("location", location).
		Float64("temperature_f", temperature).
		Msgf("Current temperature in %s: %.1f°F", location, temperature)

	update := DecideStatus(temperature)

	if err := s.statusAPI.SetStatus(ctx, update); err != nil {
		s.logger.Error().Err(err).Msg("Error updating Slack status")
		return nil
	}

	s.logger.Info().
		Str("status_text", update.Text).
		Str("status_emoji", update.Emoji).
		Msg("Slack status updated")

	return nil
}
