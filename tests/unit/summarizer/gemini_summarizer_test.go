package summarizer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recapd/internal/config"
	"recapd/internal/port"
	gemini "recapd/internal/summarizer/gemini"
)

func newGeminiTestSummarizer(serverURL string) *gemini.Summarizer {
	cfg := &config.GeminiConfig{
		APIKey:          "test-gemini-key",
		Model:           "gemini-2.0-flash",
		TimeoutSecs:     30,
		MaxOutputTokens: 8192,
	}
	return gemini.NewSummarizerWithEndpoint(cfg, serverURL)
}

func geminiSuccessResponse(texts ...string) map[string]interface{} {
	parts := make([]map[string]interface{}, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, map[string]interface{}{"text": text})
	}
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": parts,
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiSummarizer_Generate_Success(t *testing.T) {
	responseBody := geminiSuccessResponse("## Key Discussion Points\n- Alice proposed X.")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request headers
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Verify request body
		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		assert.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		assert.Equal(t, "summarize this meeting", textPart["text"])

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, float64(8192), genConfig["maxOutputTokens"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	s := newGeminiTestSummarizer(server.URL)

	result, err := s.Generate(context.Background(), port.SummaryInput{Prompt: "summarize this meeting"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "gemini-2.0-flash", result.ModelUsed)
	assert.Equal(t, "## Key Discussion Points\n- Alice proposed X.", result.Text)
}

func TestGeminiSummarizer_Generate_JoinsMultipleParts(t *testing.T) {
	responseBody := geminiSuccessResponse("first half ", "second half")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	s := newGeminiTestSummarizer(server.URL)

	result, err := s.Generate(context.Background(), port.SummaryInput{Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "first half second half", result.Text)
}

func TestGeminiSummarizer_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	s := newGeminiTestSummarizer(server.URL)

	result, err := s.Generate(context.Background(), port.SummaryInput{Prompt: "p"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGeminiSummarizer_Generate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	s := newGeminiTestSummarizer(server.URL)

	_, err := s.Generate(context.Background(), port.SummaryInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiSummarizer_Generate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	s := newGeminiTestSummarizer(server.URL)

	_, err := s.Generate(context.Background(), port.SummaryInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calling gemini API")
}

func TestGeminiSummarizer_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)
		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, float64(8192), genConfig["maxOutputTokens"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(geminiSuccessResponse("ok"))
	}))
	defer server.Close()

	// Empty model and token budget fall back to defaults.
	s := gemini.NewSummarizerWithEndpoint(&config.GeminiConfig{APIKey: "k"}, server.URL)

	result, err := s.Generate(context.Background(), port.SummaryInput{Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", result.ModelUsed)
}
