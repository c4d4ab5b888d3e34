package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recapd/internal/config"
	"recapd/internal/port"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Summarizer implements port.SummaryGenerator using Google's Gemini API.
type Summarizer struct {
	apiKey          string
	model           string
	endpoint        string
	maxOutputTokens int
	client          *http.Client
}

// NewSummarizer creates a Gemini-based summary generator.
func NewSummarizer(cfg *config.GeminiConfig) *Summarizer {
	return newSummarizer(cfg, "")
}

// NewSummarizerWithEndpoint creates a generator pointing at a custom API endpoint (for testing).
func NewSummarizerWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Summarizer {
	return newSummarizer(cfg, endpoint)
}

func newSummarizer(cfg *config.GeminiConfig, endpoint string) *Summarizer {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 8192
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Summarizer{
		apiKey:          cfg.APIKey,
		model:           model,
		endpoint:        endpoint,
		maxOutputTokens: maxTokens,
		client:          &http.Client{Timeout: timeout},
	}
}

// Generate performs a single synchronous generateContent call with the
// composed prompt. Transport and service errors are returned as errors;
// the caller decides how to surface them.
func (s *Summarizer) Generate(ctx context.Context, input port.SummaryInput) (*port.SummaryOutput, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"text": input.Prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": s.maxOutputTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	return s.parseResponse(respBody)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (s *Summarizer) parseResponse(body []byte) (*port.SummaryOutput, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API: no candidates")
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty response from API: no parts")
	}

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(part.Text)
	}

	return &port.SummaryOutput{
		Text:      sb.String(),
		ModelUsed: s.model,
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
