package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config holds the settings for the OpenAI-compatible client.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for the hosted OpenAI endpoint.
func DefaultConfig(apiKey string) Config {
	return Config{
		BaseURL:     "https://api.openai.com/v1",
		APIKey:      apiKey,
		Model:       "gpt-3.5-turbo",
		Timeout:     30 * time.Second,
		MaxTokens:   600,
		Temperature: 0.3,
	}
}

// OpenAIClient implements Interpreter against any chat-completions endpoint
// that speaks the OpenAI wire format.
type OpenAIClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
	logger      *zap.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenAIClient creates a new client. A nil logger disables logging.
func NewOpenAIClient(config Config, logger *zap.Logger) *OpenAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{
		apiKey:      config.APIKey,
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		model:       config.Model,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Interpret classifies one user message. It never returns an error: any
// failure along the way, from transport problems to unparsable model output,
// collapses into the conversational fallback so the chat endpoint keeps
// working when the upstream service does not.
func (c *OpenAIClient) Interpret(ctx context.Context, message string) *IntentResult {
	// Auto-apply timeout if context has no deadline
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	if c.apiKey == "" {
		c.logger.Warn("interpretation skipped, API key not configured")
		return Fallback("interpretation service is not configured")
	}

	content, err := c.complete(ctx, message)
	if err != nil {
		c.logger.Warn("interpretation request failed", zap.Error(err))
		return Fallback(err.Error())
	}

	var result IntentResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		c.logger.Warn("interpretation returned non-JSON content",
			zap.Int("content_len", len(content)),
			zap.Error(err))
		return Fallback("unexpected response from the interpretation service")
	}

	return &result
}

func (c *OpenAIClient) complete(ctx context.Context, message string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: masterSystemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	c.logger.Debug("interpretation completed",
		zap.String("model", c.model),
		zap.Duration("elapsed", time.Since(start)))

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
