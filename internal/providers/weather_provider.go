package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrTemperatureMissing is returned when a weather payload has no main.temp field.
var ErrTemperatureMissing = errors.New("weather response has no temperature")

type WeatherAPIService interface {
	FetchWeather(ctx context.Context, location string) (*CurrentWeather, error)
}

type weatherAPIService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherAPIService(apiKey, baseURL string, timeout time.Duration) WeatherAPIService {
	return &weatherAPIService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentWeather is the subset of the OpenWeatherMap current weather payload the bot reads.
type CurrentWeather struct {
	Name string        `json:"name"`
	Main *MainReadings `json:"main"`
}

type MainReadings struct {
	Temp *float64 `json:"temp"`
}

// Temperature returns main.temp in imperial units.
func (w *CurrentWeather) Temperature() (float64, error) {
	if w == nil || w.Main == nil || w.Main.Temp == nil {
		return 0, ErrTemperatureMissing
	}
	return *w.Main.Temp, nil
}

func (s *weatherAPIService) FetchWeather(ctx context.Context, location string) (*CurrentWeather, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", s.apiKey)
	query.Set("units", "imperial")

	endpoint := s.baseURL + "/data/2.5/weather?" + query.Encode()

	query.Set("appid", "REDACTED")
	log.Debug().Str("url", s.baseURL+"/data/2.5/weather?"+query.Encode()).Msg("Fetching weather data")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("weather request could not be built: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("location", location).Msg("Error fetching weather data")
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Int("status_code", resp.StatusCode).Str("location", location).Msg("Error fetching weather data")
		return nil, fmt.Errorf("weather API returned status code: %d", resp.StatusCode)
	}

	var weather CurrentWeather
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		log.Error().Err(err).Str("location", location).Msg("Error decoding weather data")
		return nil, fmt.Errorf("weather API returned malformed JSON: %w", err)
	}

	log.Debug().Interface("weather", weather).Msg("Weather data")

	return &weather, nil
}
