package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey         string
	TextModel      string
	EmbeddingModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		textModel := os.Getenv("GEMINI_TEXT_MODEL")
		if textModel == "" {
			textModel = "gemini-2.5-flash"
		}
		embeddingModel := os.Getenv("GEMINI_EMBEDDING_MODEL")
		if embeddingModel == "" {
			embeddingModel = "gemini-embedding-001"
		}
		geminiConfig = &GeminiConfig{
			APIKey:         os.Getenv("GEMINI_API_KEY"),
			TextModel:      textModel,
			EmbeddingModel: embeddingModel,
		}
	})
	return geminiConfig
}
