package textproc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tranminhhai/audio-notes/internal/config"
	"github.com/tranminhhai/audio-notes/internal/logger"
	ollamasdk "github.com/rozoomcool/go-ollama-sdk"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	probeTimeout         = 5 * time.Second
)

// ollamaGenerator talks to a local or remote Ollama server. Chat round trips
// go through the SDK client; when it fails, the request is replayed on the
// raw /api/chat endpoint so the failure keeps its HTTP status code.
type ollamaGenerator struct {
	apiClient *ollamasdk.OllamaClient
	baseURL   string
	model     string
	logger    logger.Logger
}

func newOllamaGenerator(ctx context.Context, cfg config.LLMConfig, log logger.Logger) *ollamaGenerator {
	baseURL := strings.TrimSpace(cfg.Host)
	if baseURL == "" {
		baseURL = strings.TrimSpace(os.Getenv("OLLAMA_BASE_URL"))
	}
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	g := &ollamaGenerator{
		apiClient: ollamasdk.NewClient(baseURL),
		baseURL:   baseURL,
		model:     cfg.Model,
		logger:    log,
	}

	log.Info(ctx, "Ollama client initialized. Model: %s, host: %s", g.model, g.baseURL)
	if err := g.probe(ctx); err != nil {
		log.Warn(ctx, "Ollama model '%s' not reachable: %v. Summarization and action item extraction may fail.",
			g.model, err)
	}
	return g
}

// probe checks that the configured model exists on the server. It is bounded
// by probeTimeout so an unresponsive server cannot stall startup.
func (g *ollamaGenerator) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{"model": g.model, "name": g.model})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(g.baseURL, "/")+"/api/show", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("show model failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Stream   bool                `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaChatMessage `json:"message"`
	Error   string            `json:"error,omitempty"`
}

type ollamaErrorResponse struct {
	Error string `json:"error"`
}

// Generate performs a single chat round trip with the prompt as the one user
// message. The SDK client is tried first; its errors do not carry HTTP status
// codes, so a failed or empty exchange is replayed on the raw /api/chat
// endpoint to classify the failure.
func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []ollamasdk.ChatMessage{
		{Role: "user", Content: prompt},
	}

	text, err := g.apiClient.Chat(g.model, messages)
	if err == nil {
		if content := strings.TrimSpace(text); content != "" {
			return content, nil
		}
	} else {
		g.logger.Debug(ctx, "SDK chat failed, classifying via raw endpoint: %v", err)
	}

	response, err := g.chat(ctx, messages)
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(response.Message.Content)
	if content == "" {
		return "", &ProcessingError{Category: "response", Message: "model returned an empty response"}
	}
	return content, nil
}

func (g *ollamaGenerator) chat(ctx context.Context, messages []ollamasdk.ChatMessage) (*ollamaChatResponse, error) {
	history := make([]ollamaChatMessage, 0, len(messages))
	for _, message := range messages {
		history = append(history, ollamaChatMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model:    g.model,
		Messages: history,
		Stream:   false,
	})
	if err != nil {
		return nil, &ProcessingError{Category: "client", Message: err.Error()}
	}

	httpRequest, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		strings.TrimRight(g.baseURL, "/")+"/api/chat",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, &ProcessingError{Category: "client", Message: err.Error()}
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")

	httpResponse, err := http.DefaultClient.Do(httpRequest)
	if err != nil {
		return nil, &ProcessingError{Category: "connection", Message: err.Error()}
	}
	defer httpResponse.Body.Close()

	rawBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, &ProcessingError{Category: "connection", Message: err.Error()}
	}

	if httpResponse.StatusCode < http.StatusOK || httpResponse.StatusCode >= http.StatusMultipleChoices {
		var apiError ollamaErrorResponse
		if unmarshalErr := json.Unmarshal(rawBody, &apiError); unmarshalErr == nil && strings.TrimSpace(apiError.Error) != "" {
			return nil, &ProcessingError{
				Status:   httpResponse.StatusCode,
				Category: "http",
				Message:  apiError.Error,
			}
		}
		return nil, &ProcessingError{
			Status:   httpResponse.StatusCode,
			Category: "http",
			Message:  strings.TrimSpace(string(rawBody)),
		}
	}

	var response ollamaChatResponse
	if err := json.Unmarshal(rawBody, &response); err != nil {
		return nil, &ProcessingError{Category: "response", Message: err.Error()}
	}
	if strings.TrimSpace(response.Error) != "" {
		return nil, &ProcessingError{Category: "response", Message: strings.TrimSpace(response.Error)}
	}

	return &response, nil
}

var _ Generator = (*ollamaGenerator)(nil)
