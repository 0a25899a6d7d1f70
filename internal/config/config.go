package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"richbot/internal/models"
)

const apiKeyEnv = "NVIDIA_API_KEY"

// LLMConfig points at one OpenAI-compatible model endpoint.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// DocumentConfig locates the profile document loaded at session start.
type DocumentConfig struct {
	DefaultPath string `yaml:"default_path"`
}

// RAGConfig holds retrieval and generation defaults.
type RAGConfig struct {
	TopK          int     `yaml:"top_k"`
	HistoryWindow int     `yaml:"history_window"`
	Temperature   float64 `yaml:"temperature"`
	TopP          float64 `yaml:"top_p"`
	MaxTokens     int     `yaml:"max_tokens"`
}

type Config struct {
	Document  DocumentConfig `yaml:"document"`
	Embedding LLMConfig      `yaml:"embedding"`
	Chat      LLMConfig      `yaml:"chat"`
	RAG       RAGConfig      `yaml:"rag"`
}

// LoadConfig reads the YAML config. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// LoadAPIKey resolves the model credential. A .env file is read if present,
// then the environment. Absence is fatal for the process, no retry.
func LoadAPIKey() (string, error) {
	_ = godotenv.Load()
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s not set: %w", apiKeyEnv, models.ErrCredential)
	}
	return key, nil
}

func defaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			DefaultPath: "resource/personal_profile.docx",
		},
		Embedding: LLMConfig{
			BaseURL: "https://integrate.api.nvidia.com/v1",
			Model:   "nvidia/nv-embedqa-e5-v5",
		},
		Chat: LLMConfig{
			BaseURL: "https://integrate.api.nvidia.com/v1",
			Model:   "gotocompany/gemma-2-9b-cpt-sahabatai-instruct",
		},
		RAG: RAGConfig{
			TopK:          5,
			HistoryWindow: 1,
			Temperature:   0.7,
			TopP:          0.7,
			MaxTokens:     256,
		},
	}
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Document.DefaultPath == "" {
		cfg.Document.DefaultPath = def.Document.DefaultPath
	}
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = def.Embedding.BaseURL
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = def.Embedding.Model
	}
	if cfg.Chat.BaseURL == "" {
		cfg.Chat.BaseURL = def.Chat.BaseURL
	}
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = def.Chat.Model
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = def.RAG.TopK
	}
	if cfg.RAG.HistoryWindow == 0 {
		cfg.RAG.HistoryWindow = def.RAG.HistoryWindow
	}
	if cfg.RAG.Temperature == 0 {
		cfg.RAG.Temperature = def.RAG.Temperature
	}
	if cfg.RAG.TopP == 0 {
		cfg.RAG.TopP = def.RAG.TopP
	}
	if cfg.RAG.MaxTokens == 0 {
		cfg.RAG.MaxTokens = def.RAG.MaxTokens
	}
}
