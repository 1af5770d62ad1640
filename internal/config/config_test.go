package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "gemini provider",
			config:  Config{Provider: ProviderGemini},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			config:  Config{Provider: "davinci"},
			wantErr: true,
		},
		{
			name:    "unknown tokenizer",
			config:  Config{Chunking: ChunkingConfig{Tokenizer: "bpe"}},
			wantErr: true,
		},
		{
			name:    "negative chunk budget",
			config:  Config{Chunking: ChunkingConfig{MaxTokens: -1}},
			wantErr: true,
		},
		{
			name:    "temperature out of range",
			config:  Config{Generation: GenerationConfig{Temperature: ptr(float32(3))}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %v, want %v", cfg.Provider, ProviderOpenAI)
	}
	if cfg.Chunking.MaxTokens != 500 {
		t.Errorf("Chunking.MaxTokens = %v, want 500", cfg.Chunking.MaxTokens)
	}
	if cfg.Generation.MaxTokens != 1800 || cfg.Generation.N != 1 {
		t.Errorf("Generation = %+v, want max_tokens 1800 and n 1", cfg.Generation)
	}
	if cfg.Generation.Temperature == nil || *cfg.Generation.Temperature != 0.5 || cfg.Generation.TopP != 1 {
		t.Errorf("Generation = %+v, want temperature 0.5 and top_p 1", cfg.Generation)
	}
	if cfg.Prompts.Summarize != DefaultSummarizePrompt {
		t.Errorf("Prompts.Summarize = %q", cfg.Prompts.Summarize)
	}
	if cfg.Minutes.Enabled {
		t.Error("Minutes.Enabled should default to false")
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("Performance.MaxConcurrent = %v, want 1", cfg.Performance.MaxConcurrent)
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidateKeepsZeroTemperature(t *testing.T) {
	cfg := Config{Generation: GenerationConfig{Temperature: ptr(float32(0))}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if *cfg.Generation.Temperature != 0 {
		t.Errorf("Temperature = %v, want an explicit 0 to be kept", *cfg.Generation.Temperature)
	}
}

func TestLoadZeroTemperature(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("generation:\n  temperature: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generation.Temperature == nil || *cfg.Generation.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", cfg.Generation.Temperature)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MINUTES_PROVIDER",
		"MINUTES_OPENAI_API_KEY", "OPENAI_API_KEY", "MINUTES_OPENAI_BASE_URL",
		"MINUTES_GEMINI_API_KEY", "GEMINI_API_KEY", "MINUTES_GEMINI_BASE_URL",
		"MINUTES_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
provider: "openai"
openai:
  api_key: "sk-test"
  model: "gpt-3.5-turbo-instruct"

chunking:
  max_tokens: 250

minutes:
  enabled: true

llm:
  timeout: 30s

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %v, want %v", cfg.OpenAI.APIKey, "sk-test")
	}
	if cfg.Chunking.MaxTokens != 250 {
		t.Errorf("Chunking.MaxTokens = %v, want 250", cfg.Chunking.MaxTokens)
	}
	if !cfg.Minutes.Enabled {
		t.Error("Minutes.Enabled = false, want true")
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("LLM.Timeout = %v, want 30s", cfg.LLM.Timeout)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %v, want json", cfg.Logging.Format)
	}
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	content := `
provider = "gemini"

[gemini]
api_key = "g-test"

[output]
docx = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %v, want %v", cfg.Provider, ProviderGemini)
	}
	if cfg.APIKey() != "g-test" {
		t.Errorf("APIKey() = %v, want g-test", cfg.APIKey())
	}
	if !cfg.Output.Docx {
		t.Error("Output.Docx = false, want true")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("MINUTES_OPENAI_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("MINUTES_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIKey() != "sk-env" {
		t.Errorf("APIKey() = %v, want sk-env", cfg.APIKey())
	}
	if cfg.OpenAI.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("OpenAI.BaseURL = %v", cfg.OpenAI.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %v, want warn", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unsupported extensions")
	}
}
