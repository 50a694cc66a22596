package interpreter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newFakeCompletion(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		response := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(baseURL string) *OpenAIClient {
	config := DefaultConfig("test-key")
	config.BaseURL = baseURL
	config.Timeout = 2 * time.Second
	return NewOpenAIClient(config, nil)
}

func TestOpenAIClient_Interpret(t *testing.T) {
	t.Run("should return the parsed intent on success", func(t *testing.T) {
		server := newFakeCompletion(t, `{"function_call":{"function":"addTask","parameters":{"description":"buy milk"}},"reply":"Added 'buy milk' to your list."}`)
		client := newTestClient(server.URL)

		result := client.Interpret(context.Background(), "add buy milk")

		require.NotNil(t, result)
		assert.Equal(t, "Added 'buy milk' to your list.", result.Reply)
		assert.JSONEq(t, `{"function":"addTask","parameters":{"description":"buy milk"}}`, string(result.FunctionCall))
	})

	t.Run("should carry a null function_call for conversational replies", func(t *testing.T) {
		server := newFakeCompletion(t, `{"function_call":null,"reply":"Hello there!"}`)
		client := newTestClient(server.URL)

		result := client.Interpret(context.Background(), "hi")

		require.NotNil(t, result)
		assert.Equal(t, "Hello there!", result.Reply)
		assert.Equal(t, "null", string(result.FunctionCall))
	})

	t.Run("should fall back when the model returns prose", func(t *testing.T) {
		server := newFakeCompletion(t, "I happily added that task for you!")
		client := newTestClient(server.URL)

		result := client.Interpret(context.Background(), "add buy milk")

		require.NotNil(t, result)
		assert.Nil(t, result.FunctionCall)
		assert.Contains(t, result.Reply, "Sorry, I couldn't interpret that")
	})

	t.Run("should fall back on an upstream server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)
		client := newTestClient(server.URL)

		result := client.Interpret(context.Background(), "add buy milk")

		require.NotNil(t, result)
		assert.Nil(t, result.FunctionCall)
		assert.Contains(t, result.Reply, "Sorry, I couldn't interpret that")
	})

	t.Run("should fall back without a network call when no key is set", func(t *testing.T) {
		config := DefaultConfig("")
		config.BaseURL = "http://127.0.0.1:0"
		client := NewOpenAIClient(config, nil)

		result := client.Interpret(context.Background(), "add buy milk")

		require.NotNil(t, result)
		assert.Nil(t, result.FunctionCall)
		assert.Contains(t, result.Reply, "not configured")
	})

	t.Run("should fall back when the context deadline passes", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		t.Cleanup(func() {
			close(release)
			server.Close()
		})
		client := newTestClient(server.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		result := client.Interpret(ctx, "add buy milk")

		require.NotNil(t, result)
		assert.Nil(t, result.FunctionCall)
		assert.Contains(t, result.Reply, "Sorry, I couldn't interpret that")
	})
}

func TestFallback(t *testing.T) {
	result := Fallback("timeout")

	assert.Nil(t, result.FunctionCall)
	assert.Equal(t, "Sorry, I couldn't interpret that (timeout)", result.Reply)
}
