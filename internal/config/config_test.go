package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"richbot/internal/models"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RAG.TopK != 5 || cfg.RAG.HistoryWindow != 1 {
		t.Errorf("unexpected RAG defaults: %+v", cfg.RAG)
	}
	if cfg.Chat.Model == "" || cfg.Embedding.Model == "" {
		t.Error("model defaults should be set")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "rag:\n  top_k: 3\nchat:\n  model: some/other-model\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RAG.TopK != 3 {
		t.Errorf("top_k = %d, want 3", cfg.RAG.TopK)
	}
	if cfg.Chat.Model != "some/other-model" {
		t.Errorf("chat model = %q", cfg.Chat.Model)
	}
	if cfg.RAG.MaxTokens != 256 {
		t.Errorf("max_tokens default lost: %d", cfg.RAG.MaxTokens)
	}
	if cfg.Embedding.BaseURL == "" {
		t.Error("embedding base URL default lost")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rag: [not: a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestLoadAPIKey_Missing(t *testing.T) {
	t.Setenv("NVIDIA_API_KEY", "")
	_, err := LoadAPIKey()
	if !errors.Is(err, models.ErrCredential) {
		t.Fatalf("expected ErrCredential, got %v", err)
	}
}

func TestLoadAPIKey_Present(t *testing.T) {
	t.Setenv("NVIDIA_API_KEY", "nvapi-test")
	key, err := LoadAPIKey()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if key != "nvapi-test" {
		t.Errorf("key = %q", key)
	}
}
