package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "analysis text"}}}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Model: "gemini-1.5-flash"})

	text, err := client.GenerateContent(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "analysis text", text)

	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	assert.Equal(t, "analyze this", parts[0].(map[string]any)["text"])

	genCfg := gotBody["generationConfig"].(map[string]any)
	assert.InDelta(t, 0.4, genCfg["temperature"].(float64), 0.001)
	assert.InDelta(t, 0.95, genCfg["topP"].(float64), 0.001)
	assert.InDelta(t, 2048, genCfg["maxOutputTokens"].(float64), 0.001)
}

func TestClient_GenerateContent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestClient_GenerateContent_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestClient_GenerateContent_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL, Timeout: 20 * time.Millisecond})

	_, err := client.GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	assert.Equal(t, defaultBaseURL, client.cfg.BaseURL)
	assert.Equal(t, "gemini-1.5-flash", client.cfg.Model)
	assert.Equal(t, 30*time.Second, client.cfg.Timeout)
}
