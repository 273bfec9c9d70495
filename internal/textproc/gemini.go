package textproc

import (
	"context"

	"github.com/tranminhhai/audio-notes/internal/config"
	"github.com/tranminhhai/audio-notes/internal/logger"
	"google.golang.org/genai"
)

// geminiGenerator is the remote alternative to a local Ollama server. The
// API key comes from GEMINI_API_KEY, which the genai client picks up on its
// own.
type geminiGenerator struct {
	client *genai.Client
	model  string
	logger logger.Logger

	clientErr error
}

func newGeminiGenerator(ctx context.Context, cfg config.LLMConfig, log logger.Logger) *geminiGenerator {
	g := &geminiGenerator{
		model:  cfg.Model,
		logger: log,
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		// Calls re-validate; record and keep going.
		log.Warn(ctx, "Gemini client unavailable: %v. Summarization and action item extraction may fail.", err)
		g.clientErr = err
		return g
	}

	g.client = client
	log.Info(ctx, "Gemini client initialized. Model: %s", g.model)
	return g
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.clientErr != nil {
		return "", &ProcessingError{Category: "client", Message: g.clientErr.Error()}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &ProcessingError{Category: "connection", Message: err.Error()}
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &ProcessingError{Category: "response", Message: "empty response from Gemini"}
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", &ProcessingError{Category: "response", Message: "no text parts in Gemini response"}
	}
	return text, nil
}

var _ Generator = (*geminiGenerator)(nil)
