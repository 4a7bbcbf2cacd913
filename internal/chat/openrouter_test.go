package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterClient_Ask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "What does John 3:16 mean?", req.Messages[1].Content)
		assert.InDelta(t, 0.3, req.Temperature, 0.0001)

		json.NewEncoder(w).Encode(completionResponse{
			Choices: []struct {
				Message completionMessage `json:"message"`
			}{
				{Message: completionMessage{Role: "assistant", Content: "It speaks of God's love."}},
			},
		})
	}))
	defer server.Close()

	client := NewOpenRouterClient(server.URL, "test-key", "test-model")

	reply, err := client.Ask(context.Background(), "What does John 3:16 mean?")
	require.NoError(t, err)
	assert.Equal(t, "It speaks of God's love.", reply)
}

func TestOpenRouterClient_Ask_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse{})
	}))
	defer server.Close()

	client := NewOpenRouterClient(server.URL, "test-key", "test-model")

	reply, err := client.Ask(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "No response.", reply)
}

func TestOpenRouterClient_Ask_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewOpenRouterClient(server.URL, "test-key", "test-model")

	_, err := client.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenRouterClient_Ask_EmptyPrompt(t *testing.T) {
	client := NewOpenRouterClient("http://localhost:0", "test-key", "test-model")

	_, err := client.Ask(context.Background(), "   ")
	assert.Error(t, err)
}
