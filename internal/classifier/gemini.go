// Package classifier provides the remote mood classifier backed by the
// Gemini generateContent API.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"daybook/internal/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	// The instruction the mobile app has always sent; the label vocabulary
	// is whatever the model answers, stored verbatim.
	systemInstruction = "You are a therapist that analyzes journal for the mood and provides just an emoji that represents the mood."
)

// Gemini implements domain.MoodClassifier over the Gemini REST API.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

var _ domain.MoodClassifier = (*Gemini)(nil)

// Option configures a Gemini classifier.
type Option func(*Gemini)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(g *Gemini) {
		if baseURL != "" {
			g.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Gemini) {
		if timeout > 0 {
			g.client.Timeout = timeout
		}
	}
}

// NewGemini creates a Gemini classifier with the given API key.
func NewGemini(apiKey string, opts ...Option) *Gemini {
	g := &Gemini{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type generateContentRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Classify sends the journal text to the model and returns the mood label.
// Any transport or provider failure, and an empty model answer, surface as
// domain.ErrClassifier so callers can refuse to persist a half-built entry.
func (g *Gemini) Classify(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: text}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", domain.ErrClassifier, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrClassifier, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrClassifier, err)
	}
	defer resp.Body.Close()

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrClassifier, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: %s", domain.ErrClassifier, msg)
	}

	label := firstText(parsed)
	if label == "" {
		return "", fmt.Errorf("%w: empty response from model", domain.ErrClassifier)
	}
	return label, nil
}

func firstText(resp generateContentResponse) string {
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if s := strings.TrimSpace(p.Text); s != "" {
				return s
			}
		}
	}
	return ""
}
