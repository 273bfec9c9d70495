package textproc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tranminhhai/audio-notes/internal/logger"
)

const summarizePrompt = `Summarize the following text in about 3-4 key sentences:

%s

Summary:`

const actionItemsPrompt = `Based on the following text, extract key action items.
If no specific action items are mentioned, state 'No specific action items found'.
Present the action items as a bulleted list.

Text:
%s

Action Items:`

// callTimeout bounds every generative round trip. The upstream clients in
// this stack use the same value for local model servers, which can be slow
// on first token but should never hang forever.
const callTimeout = 180 * time.Second

type implProcessor struct {
	generator Generator
	logger    logger.Logger
}

// Summarize asks the model for a 3-4 sentence abstraction of the text.
func (p *implProcessor) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	p.logger.Info(ctx, "Summarizing transcript (%d characters)", len(text))

	out, err := p.generate(ctx, fmt.Sprintf(summarizePrompt, text))
	if err != nil {
		return "", err
	}

	p.logger.Debug(ctx, "Summarization complete")
	return out, nil
}

// ExtractActionItems asks the model for a bulleted action-item list. When
// the text has no actionable content the model responds with the
// NoActionItems sentinel, which is a valid non-error result.
func (p *implProcessor) ExtractActionItems(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	p.logger.Info(ctx, "Extracting action items (%d characters)", len(text))

	out, err := p.generate(ctx, fmt.Sprintf(actionItemsPrompt, text))
	if err != nil {
		return "", err
	}

	p.logger.Debug(ctx, "Action item extraction complete")
	return out, nil
}

func (p *implProcessor) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	out, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
