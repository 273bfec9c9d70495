package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrInvalidConfig means the webhook URL was empty at construction.
var ErrInvalidConfig = errors.New("webhook URL cannot be empty")

// DeliveryError describes a failed webhook delivery. Status and Body are set
// when the server responded with an error status; Cause is set when no
// response was received at all.
type DeliveryError struct {
	Status int
	Body   string
	Cause  error
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("webhook delivery failed: %v", e.Cause)
	}
	return fmt.Sprintf("webhook responded with status %d: %s", e.Status, e.Body)
}

func (e *DeliveryError) Unwrap() error { return e.Cause }

// Adaptive-card payload, shaped exactly the way Teams incoming webhooks
// expect it. contentUrl must be present and null.
type cardPayload struct {
	Type        string           `json:"type"`
	Attachments []cardAttachment `json:"attachments"`
}

type cardAttachment struct {
	ContentType string       `json:"contentType"`
	ContentURL  any          `json:"contentUrl"`
	Content     adaptiveCard `json:"content"`
}

type adaptiveCard struct {
	Schema  string      `json:"$schema"`
	Type    string      `json:"type"`
	Version string      `json:"version"`
	Body    []textBlock `json:"body"`
}

type textBlock struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	Weight string `json:"weight,omitempty"`
	Size   string `json:"size,omitempty"`
	Wrap   bool   `json:"wrap,omitempty"`
}

func buildCard(title, body string) cardPayload {
	return cardPayload{
		Type: "message",
		Attachments: []cardAttachment{
			{
				ContentType: "application/vnd.microsoft.card.adaptive",
				ContentURL:  nil,
				Content: adaptiveCard{
					Schema:  "http://adaptivecards.io/schemas/adaptive-card.json",
					Type:    "AdaptiveCard",
					Version: "1.4",
					Body: []textBlock{
						{Type: "TextBlock", Text: title, Weight: "bolder", Size: "medium"},
						{Type: "TextBlock", Text: body, Wrap: true},
					},
				},
			},
		},
	}
}

// Post sends the card. Success is HTTP 200, or a non-error status with a raw
// response body of "1", which some webhook deployments return instead of a
// status-only reply. Any 4xx or 5xx status is a delivery failure regardless
// of body.
func (p *implPoster) Post(ctx context.Context, title, body string) (bool, error) {
	if strings.TrimSpace(body) == "" {
		p.logger.Info(ctx, "Message body is empty, nothing to post")
		return false, nil
	}

	payload, err := json.Marshal(buildCard(title, body))
	if err != nil {
		return false, &DeliveryError{Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return false, &DeliveryError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	p.logger.Info(ctx, "Posting message to MS Teams")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false, &DeliveryError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &DeliveryError{Cause: err}
	}

	if resp.StatusCode == http.StatusOK ||
		(resp.StatusCode < http.StatusBadRequest && string(respBody) == "1") {
		p.logger.Info(ctx, "Message posted successfully")
		return true, nil
	}

	return false, &DeliveryError{
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(respBody)),
	}
}
