package textproc

import (
	"context"
	"fmt"

	"github.com/tranminhhai/audio-notes/internal/config"
	"github.com/tranminhhai/audio-notes/internal/logger"
)

// New creates a TextProcessor backed by the configured generative model.
// Construction probes the model's availability and logs a warning when it
// cannot be reached; calls re-validate on their own, so the processor is
// returned anyway.
func New(ctx context.Context, cfg config.LLMConfig, log logger.Logger) (TextProcessor, error) {
	var gen Generator

	switch cfg.Provider {
	case "", "ollama":
		gen = newOllamaGenerator(ctx, cfg, log)
	case "gemini":
		gen = newGeminiGenerator(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	return &implProcessor{
		generator: gen,
		logger:    log,
	}, nil
}

// NewWithGenerator creates a TextProcessor around an existing Generator.
// Used by tests and by front ends that bring their own model client.
func NewWithGenerator(gen Generator, log logger.Logger) TextProcessor {
	return &implProcessor{
		generator: gen,
		logger:    log,
	}
}
