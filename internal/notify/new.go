package notify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tranminhhai/audio-notes/internal/logger"
)

// postTimeout bounds the webhook round trip.
const postTimeout = 10 * time.Second

type implPoster struct {
	webhookURL string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Poster for the given MS Teams incoming webhook URL. Only an
// empty URL is rejected; a non-https scheme just logs a warning so test and
// mock endpoints stay usable.
func New(webhookURL string, log logger.Logger) (Poster, error) {
	if webhookURL == "" {
		return nil, ErrInvalidConfig
	}
	if !strings.HasPrefix(webhookURL, "https://") {
		log.Warn(context.Background(),
			"Webhook URL does not use https; make sure it is a correct MS Teams incoming webhook URL")
	}

	return &implPoster{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: postTimeout},
		logger:     log,
	}, nil
}
