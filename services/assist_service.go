package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AssistService proxies blog-editing helpers (SEO, translation, readability)
// to a hosted completion API.
type AssistService struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewAssistService(baseURL, apiKey, model string) *AssistService {
	return &AssistService{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type AssistIn struct {
	Action   string `json:"action" binding:"required,oneof=seo translate readability"`
	Content  string `json:"content" binding:"required"`
	Title    string `json:"title"`
	Language string `json:"language"`
}

var assistPrompts = map[string]string{
	"seo":         "Write an SEO meta description (max 160 chars) for this article.",
	"translate":   "Translate this article, keeping the tone and formatting.",
	"readability": "Rewrite this article for readability without changing its meaning.",
}

func (s *AssistService) Assist(ctx context.Context, in *AssistIn) (string, error) {
	if s.BaseURL == "" || s.APIKey == "" {
		return "", errors.New("assist provider not configured")
	}

	prompt := assistPrompts[in.Action]
	if in.Language != "" {
		prompt += " Target language: " + in.Language + "."
	}
	if in.Title != "" {
		prompt += " Title: " + in.Title + "."
	}

	payload := map[string]any{
		"model": s.Model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt},
			{"role": "user", "content": in.Content},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	res, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assist upstream status %d", res.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("assist upstream returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
