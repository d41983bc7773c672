package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"ulascansenturk/weather-status-bot/config"
	"ulascansenturk/weather-status-bot/internal/mocks"
	"ulascansenturk/weather-status-bot/internal/providers"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-status-bot/internal/service"
)

type StatusServiceTestSuite struct {
	suite.Suite
	mockWeatherAPI *mocks.MockWeatherAPIService
	mockStatusAPI  *mocks.MockStatusUpdater
	conf           *config.Config
	logs           *bytes.Buffer
	service        service.StatusService
	ctx            context.Context
}

func (s *StatusServiceTestSuite) SetupTest() {
	s.mockWeatherAPI = mocks.NewMockWeatherAPIService(s.T())
	s.mockStatusAPI = mocks.NewMockStatusUpdater(s.T())
	s.conf = &config.Config{UserLocation: "Phoenix,US"}
	s.logs = &bytes.Buffer{}
	s.service = service.NewStatusService(s.conf, s.mockWeatherAPI, s.mockStatusAPI, zerolog.New(s.logs))
	s.ctx = context.Background()
}

func weatherAt(temperature float64) *providers.CurrentWeather {
	return &providers.CurrentWeather{
		Name: "Phoenix",
		Main: &providers.MainReadings{Temp: &temperature},
	}
}

func (s *StatusServiceTestSuite) TestRunAboveThresholdSetsMeetingStatus() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").Return(weatherAt(85.0), nil)
	s.mockStatusAPI.On("SetStatus", mock.Anything, providers.StatusUpdate{Text: "In a meeting", Emoji: ":meeting:"}).
		Return(nil)

	err := s.service.Run(s.ctx)

	s.NoError(err)
	s.Contains(s.logs.String(), "Slack status updated")
}

func (s *StatusServiceTestSuite) TestRunBelowThresholdClearsStatus() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").Return(weatherAt(70.0), nil)
	s.mockStatusAPI.On("SetStatus", mock.Anything, providers.StatusUpdate{Text: "", Emoji: ":meeting:"}).
		Return(nil)

	err := s.service.Run(s.ctx)

	s.NoError(err)
}

func (s *StatusServiceTestSuite) TestRunAtThresholdClearsStatus() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").Return(weatherAt(82.0), nil)
	s.mockStatusAPI.On("SetStatus", mock.Anything, providers.StatusUpdate{Text: "", Emoji: ":meeting:"}).
		Return(nil)

	err := s.service.Run(s.ctx)

	s.NoError(err)
}

func (s *StatusServiceTestSuite) TestRunWeatherServerErrorSkipsStatusUpdate() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").
		Return(nil, errors.New("weather API returned status code: 500"))

	err := s.service.Run(s.ctx)

	s.Error(err)
	s.Contains(s.logs.String(), `"level":"error"`)
	s.Contains(s.logs.String(), "Could not retrieve weather data")
	s.Contains(s.logs.String(), "status code: 500")
	s.mockStatusAPI.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything)
}

func (s *StatusServiceTestSuite) TestRunWeatherTransportErrorSkipsStatusUpdate() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").
		Return(nil, errors.New("weather request failed: connection refused"))

	err := s.service.Run(s.ctx)

	s.Error(err)
	s.mockStatusAPI.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything)
}

func (s *StatusServiceTestSuite) TestRunMissingTemperatureSkipsStatusUpdate() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").
		Return(&providers.CurrentWeather{Name: "Phoenix"}, nil)

	err := s.service.Run(s.ctx)

	s.ErrorIs(err, providers.ErrTemperatureMissing)
	s.Contains(s.logs.String(), "Could not read temperature")
	s.mockStatusAPI.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything)
}

func (s *StatusServiceTestSuite) TestRunMissingLocationDoesNothing() {
	s.conf.UserLocation = ""

	err := s.service.Run(s.ctx)

	s.ErrorIs(err, service.ErrMissingLocation)
	s.Contains(s.logs.String(), "USER_LOCATION not set")
	s.mockWeatherAPI.AssertNotCalled(s.T(), "FetchWeather", mock.Anything, mock.Anything)
	s.mockStatusAPI.AssertNotCalled(s.T(), "SetStatus", mock.Anything, mock.Anything)
}

func (s *StatusServiceTestSuite) TestRunStatusUpdateFailureIsLogged() {
	s.mockWeatherAPI.On("FetchWeather", mock.Anything, "Phoenix,US").Return(weatherAt(90.0), nil)
	s.mockStatusAPI.On("SetStatus", mock.Anything, mock.Anything).
		Return(errors.New("slack users.profile.set failed: invalid_auth")).
		Once()

	err := s.service.Run(s.ctx)

	s.NoError(err)
	s.Contains(s.logs.String(), "Error updating Slack status")
	s.Contains(s.logs.String(), "invalid_auth")
	s.NotContains(s.logs.String(), "Slack status updated")
}

func (s *StatusServiceTestSuite) TestRunPassesContextThrough() {
	type ctxKey struct{}
	ctx := context.WithValue(s.ctx, ctxKey{}, "run")

	s.mockWeatherAPI.On("FetchWeather", ctx, "Phoenix,US").Return(weatherAt(60.0), nil)
	s.mockStatusAPI.On("SetStatus", ctx, mock.Anything).Return(nil)

	s.NoError(s.service.Run(ctx))
}

func TestStatusServiceSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}

func TestDecideStatus(t *testing.T) {
	cases := []struct {
		name        string
		temperature float64
		want        string
	}{
		{name: "well above", temperature: 101.3, want: "In a meeting"},
		{name: "just above", temperature: 82.01, want: "In a meeting"},
		{name: "exactly threshold", temperature: 82.0, want: ""},
		{name: "below", temperature: 70.0, want: ""},
		{name: "freezing", temperature: -4.0, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			update := service.DecideStatus(tc.temperature)
			assert.Equal(t, tc.want, update.Text)
			assert.Equal(t, service.MeetingEmoji, update.Emoji)
		})
	}
}
