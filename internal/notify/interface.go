package notify

import "context"

// Poster delivers notification cards to a team chat webhook.
type Poster interface {
	// Post sends a card with the given title and body. It returns true only
	// when the webhook accepted the message. An empty body is a no-op that
	// returns (false, nil).
	Post(ctx context.Context, title, body string) (bool, error)
}
