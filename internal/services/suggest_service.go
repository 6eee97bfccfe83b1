package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"Stowage/internal/config"
)

// SuggestService asks an OpenAI-compatible endpoint for a short box name
// based on the item list. Purely advisory: any failure means "no suggestion"
// and is never surfaced to the user.
type SuggestService interface {
	SuggestName(ctx context.Context, items []string) (string, error)
}

type suggestServiceImpl struct {
	url        string
	model      string
	logService LogService
	client     *http.Client
}

func NewSuggestService(configuration *config.Configuration, logService LogService) SuggestService {
	return &suggestServiceImpl{
		url:        configuration.Suggest.URL,
		model:      configuration.Suggest.Model,
		logService: logService,
		client:     http.DefaultClient,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *suggestServiceImpl) SuggestName(ctx context.Context, items []string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", nil
	}
	named := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			named = append(named, item)
		}
	}
	if len(named) == 0 {
		return "", nil
	}

	prompt := fmt.Sprintf("Suggest a short and simple storage box name based on these items: %s. Keep it max 3 words.", strings.Join(named, ", "))
	body, err := json.Marshal(map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a creative assistant that names storage boxes based on contents."},
			{"role": "user", "content": prompt},
		},
		"max_tokens":  20,
		"temperature": 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logService.Log.WithField("error", err.Error()).Warn("name suggestion request failed")
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.logService.Log.WithField("error", err.Error()).Warn("could not parse name suggestion response")
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	suggestion := strings.TrimSpace(parsed.Choices[0].Message.Content)
	suggestion = strings.Trim(suggestion, `"`)
	return suggestion, nil
}
