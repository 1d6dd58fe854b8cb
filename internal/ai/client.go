package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/liurongbaobao/myWisdomRestaurant/internal/config"
)

// Caller issues one outbound call to the model provider and returns the
// completion's answer text. Implementations never retry.
type Caller interface {
	ChatVision(ctx context.Context, prompt, imageBase64 string) (string, error)
	ChatText(ctx context.Context, prompt string) (string, error)
}

// Client talks to an OpenAI-compatible chat-completions endpoint with
// bearer auth. One HTTPS call per stage, fixed timeout, no retries.
type Client struct {
	cfg        config.AI
	httpClient *http.Client
}

func NewClient(cfg config.AI) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// ChatVision sends the prompt together with the image to the
// image-capable model and returns the answer text.
func (c *Client) ChatVision(ctx context.Context, prompt, imageBase64 string) (string, error) {
	content := []map[string]any{
		{"type": "text", "text": prompt},
	}
	if imageBase64 != "" {
		content = append(content, map[string]any{
			"type": "image_url",
			"image_url": map[string]string{
				"url": "data:image/png;base64," + imageBase64,
			},
		})
	}

	payload := map[string]any{
		"model": c.cfg.VisionModel,
		"messages": []map[string]any{
			{"role": "user", "content": content},
		},
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.VisionTemperature,
	}

	return c.complete(ctx, payload)
}

// ChatText sends a text-only prompt to the text model and returns the
// answer text.
func (c *Client) ChatText(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model": c.cfg.TextModel,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.TextTemperature,
	}

	return c.complete(ctx, payload)
}

func (c *Client) complete(ctx context.Context, payload map[string]any) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("missing model API key")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.Endpoint,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model api error: status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unreadable model response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("no response from model")
	}

	return result.Choices[0].Message.Content, nil
}
