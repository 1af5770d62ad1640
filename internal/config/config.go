package config

import (
	"fmt"
	"time"
)

// Supported completion providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Supported chunk token counters.
const (
	TokenizerWords    = "words"
	TokenizerTiktoken = "tiktoken"
)

// DefaultSummarizePrompt asks for a lossless summary of one transcript chunk.
const DefaultSummarizePrompt = "Provide a summary of the transcript chunk provided. Do not shed details:\n\n{chunk}\nSummary: "

// DefaultUpdateMinutesPrompt folds summarized information into an existing minutes structure.
const DefaultUpdateMinutesPrompt = "Here is the current meeting minutes structure:\n\n{currentMinutes}\n\nPlease update the meeting minutes with the following new summarized information and combine any duplicated sections. Use a consistent, bullet list format for section content:\n\n{chunk}\nUpdated meeting minutes: "

type Config struct {
	Provider    string            `yaml:"provider" toml:"provider"`
	OpenAI      OpenAIConfig      `yaml:"openai" toml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini" toml:"gemini"`
	Generation  GenerationConfig  `yaml:"generation" toml:"generation"`
	Chunking    ChunkingConfig    `yaml:"chunking" toml:"chunking"`
	Prompts     PromptsConfig     `yaml:"prompts" toml:"prompts"`
	Minutes     MinutesConfig     `yaml:"minutes" toml:"minutes"`
	Output      OutputConfig      `yaml:"output" toml:"output"`
	Paths       PathsConfig       `yaml:"paths" toml:"paths"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
	Performance PerformanceConfig `yaml:"performance" toml:"performance"`
	LLM         LLMConfig         `yaml:"llm" toml:"llm"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" toml:"api_key"`
	BaseURL string `yaml:"base_url" toml:"base_url"`
	Model   string `yaml:"model" toml:"model"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key" toml:"api_key"`
	BaseURL string `yaml:"base_url" toml:"base_url"` // empty uses the SDK default
	Model   string `yaml:"model" toml:"model"`
}

// GenerationConfig holds the sampling parameters sent with every request.
type GenerationConfig struct {
	MaxTokens        int      `yaml:"max_tokens" toml:"max_tokens"`
	N                int      `yaml:"n" toml:"n"`
	Temperature      *float32 `yaml:"temperature" toml:"temperature"` // unset means 0.5; 0 is kept
	TopP             float32  `yaml:"top_p" toml:"top_p"`
	FrequencyPenalty float32  `yaml:"frequency_penalty" toml:"frequency_penalty"`
	PresencePenalty  float32  `yaml:"presence_penalty" toml:"presence_penalty"`
}

type ChunkingConfig struct {
	MaxTokens int    `yaml:"max_tokens" toml:"max_tokens"`
	Tokenizer string `yaml:"tokenizer" toml:"tokenizer"`
	Encoding  string `yaml:"encoding" toml:"encoding"`
}

type PromptsConfig struct {
	Summarize     string `yaml:"summarize" toml:"summarize"`
	UpdateMinutes string `yaml:"update_minutes" toml:"update_minutes"`
}

// MinutesConfig toggles the second pass that merges summaries into a minutes template.
type MinutesConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx" toml:"docx"`
}

type PathsConfig struct {
	Input    string `yaml:"input" toml:"input"`
	Output   string `yaml:"output" toml:"output"`
	Template string `yaml:"template" toml:"template"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" toml:"max_concurrent"`
}

type LLMConfig struct {
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider)
	}
	if c.Chunking.MaxTokens < 0 {
		return fmt.Errorf("chunking.max_tokens must not be negative")
	}
	if c.Generation.MaxTokens < 0 {
		return fmt.Errorf("generation.max_tokens must not be negative")
	}
	if t := c.Generation.Temperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("generation.temperature must be between 0 and 2")
	}
	if c.Chunking.Tokenizer == "" {
		c.Chunking.Tokenizer = TokenizerWords
	}
	if c.Chunking.Tokenizer != TokenizerWords && c.Chunking.Tokenizer != TokenizerTiktoken {
		return fmt.Errorf("chunking.tokenizer must be %q or %q, got %q", TokenizerWords, TokenizerTiktoken, c.Chunking.Tokenizer)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo-instruct"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Generation.MaxTokens == 0 {
		c.Generation.MaxTokens = 1800
	}
	if c.Generation.N == 0 {
		c.Generation.N = 1
	}
	if c.Generation.Temperature == nil {
		temperature := float32(0.5)
		c.Generation.Temperature = &temperature
	}
	if c.Generation.TopP == 0 {
		c.Generation.TopP = 1
	}
	if c.Chunking.MaxTokens == 0 {
		c.Chunking.MaxTokens = 500
	}
	if c.Chunking.Encoding == "" {
		c.Chunking.Encoding = "cl100k_base"
	}
	if c.Prompts.Summarize == "" {
		c.Prompts.Summarize = DefaultSummarizePrompt
	}
	if c.Prompts.UpdateMinutes == "" {
		c.Prompts.UpdateMinutes = DefaultUpdateMinutesPrompt
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.APIKey
	}
	return c.OpenAI.APIKey
}
