package config

import (
	"os"
	"strings"
	"sync"
)

type LLMConfig struct {
	APIKey string
	Mode   string // "strict" or "relaxed"
	Model  string
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		mode := strings.ToLower(os.Getenv("LLM_MODE"))
		if mode == "" {
			mode = "relaxed"
		}
		model := os.Getenv("LLM_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		llmConfig = &LLMConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Mode:   mode,
			Model:  model,
		}
	})
	return llmConfig
}
