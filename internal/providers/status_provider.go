package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// StatusUpdate is the profile status sent to Slack. An empty Text clears the status.
type StatusUpdate struct {
	Text  string
	Emoji string
}

type StatusUpdater interface {
	SetStatus(ctx context.Context, update StatusUpdate) error
}

type slackStatusService struct {
	client *slack.Client
}

func NewSlackStatusService(token, apiURL string, timeout time.Duration) StatusUpdater {
	return &slackStatusService{
		client: slack.New(
			token,
			slack.OptionAPIURL(apiURL),
			slack.OptionHTTPClient(&http.Client{Timeout: timeout}),
		),
	}
}

func (s *slackStatusService) SetStatus(ctx context.Context, update StatusUpdate) error {
	// status_expiration 0 keeps the status until the next run replaces it
	if err := s.client.SetUserCustomStatusContext(ctx, update.Text, update.Emoji, 0); err != nil {
		return fmt.Errorf("slack users.profile.set failed: %w", err)
	}

	log.Debug().Str("status_text", update.Text).Str("status_emoji", update.Emoji).Msg("Slack profile updated")

	return nil
}
