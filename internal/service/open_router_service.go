package service

import (
	"fmt"

	"github.com/fadilmartias/mentor-match/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterServiceInterface is the fallback text provider used when the
// primary model is unavailable.
type OpenRouterServiceInterface interface {
	Summarize(prompt string) (string, error)
}

type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	openRouterConfig := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey: openRouterConfig.APIKey,
		Model:  openRouterConfig.Model,
		client: resty.New(),
	}
}

// Summarize sends the prompt to OpenRouter and returns the assistant text.
func (s *OpenRouterService) Summarize(prompt string) (string, error) {
	resp, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You write short, friendly summaries of mentor recommendations for a career-mentorship platform."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("https://openrouter.ai/api/v1/chat/completions")
	if err != nil {
		return "", err
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
