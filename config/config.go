package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	SlackToken    string
	WeatherAPIKey string
	UserLocation  string

	WeatherBaseURL string
	SlackAPIURL    string
}

// flagKeys maps command line flags onto the env-style keys they override.
var flagKeys = map[string]string{
	"location":  "USER_LOCATION",
	"log-level": "LOG_LEVEL",
}

func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-status-bot")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("WEATHER_BASE_URL", "https://api.openweathermap.org")
	v.SetDefault("SLACK_API_URL", "https://slack.com/api/")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("error binding flag %q: %w", name, err)
			}
		}
	}

	config := &Config{
		ServiceName:    v.GetString("SERVICE_NAME"),
		Env:            v.GetString("ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		HTTPTimeout:    v.GetInt32("HTTP_TIMEOUT"),
		SlackToken:     v.GetString("SLACK_TOKEN"),
		WeatherAPIKey:  v.GetString("WEATHER_API_KEY"),
		UserLocation:   v.GetString("USER_LOCATION"),
		WeatherBaseURL: v.GetString("WEATHER_BASE_URL"),
		SlackAPIURL:    v.GetString("SLACK_API_URL"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// NewFlagSet returns the flags understood by LoadConfig.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("location", "", "location to check the weather for (overrides USER_LOCATION)")
	flags.String("log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	return flags
}
