package textproc

import (
	"context"
	"strings"
)

// NoActionItems is the fixed phrase the action-item prompt instructs the
// model to answer with when the text contains nothing actionable. Callers
// must treat it as "no items", not as content and not as an error.
const NoActionItems = "No specific action items found"

// TextProcessor derives a summary and an action-item list from transcript
// text via a generative text model.
type TextProcessor interface {
	Summarize(ctx context.Context, text string) (string, error)
	ExtractActionItems(ctx context.Context, text string) (string, error)
}

// Generator is the narrow capability boundary to a generative text model:
// one prompt in, one text response out. Implementations are swappable and
// mockable in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IsNoActionItems reports whether a model response means "no items". The
// match is case-insensitive and tolerant of surrounding prose, since models
// tend to wrap the sentinel in a full sentence.
func IsNoActionItems(s string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(NoActionItems))
}
