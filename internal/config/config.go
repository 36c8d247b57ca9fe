package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	exeDirCache string
)

// getExecutableDir returns the directory where the executable is located
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

type Config struct {
	AI         AIConfig         `yaml:"ai,omitempty"`
	Dataset    DatasetConfig    `yaml:"dataset,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Generation GenerationConfig `yaml:"generation,omitempty"`
}

// AIConfig selects the model provider used for generation.
type AIConfig struct {
	Provider string `yaml:"provider,omitempty"` // "gemini", "openai", "claude"
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"` // OpenAI-compatible endpoints only
	Model    string `yaml:"model,omitempty"`
}

// DatasetConfig locates the corpus of labeled reference entries.
type DatasetConfig struct {
	DBPath string `yaml:"db_path,omitempty"`
}

// OutputConfig controls where generated entries are written.
type OutputConfig struct {
	Dir    string `yaml:"dir,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
}

// GenerationConfig holds per-entry generation defaults; command line
// flags override these.
type GenerationConfig struct {
	WordCount int `yaml:"word_count,omitempty"`
	Examples  int `yaml:"examples,omitempty"`
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// Key returns the configured API key, falling back to the conventional
// environment variable for the selected provider.
func (a AIConfig) Key() string {
	if a.APIKey != "" {
		return a.APIKey
	}
	switch a.Provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "claude", "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GOOGLE_API_KEY")
	}
}

// DefaultPath returns the config file path next to the executable.
func DefaultPath() string {
	return filepath.Join(getExecutableDir(), ".journalgen.yaml")
}

// Load reads the config file from the default location. A missing file
// yields a config with defaults applied, not an error.
func Load() (*Config, error) {
	return LoadFromPath(DefaultPath())
}

// LoadFromPath reads and parses the config file at the given path.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.AI.Model == "" {
		c.AI.Model = defaultModel(c.AI.Provider)
	}
	if c.Dataset.DBPath == "" {
		c.Dataset.DBPath = filepath.Join(getExecutableDir(), ".journalgen.db")
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "generated_entries"
	}
	if c.Output.Prefix == "" {
		c.Output.Prefix = "journal"
	}
	if c.Generation.WordCount <= 0 {
		c.Generation.WordCount = 100
	}
	if c.Generation.Examples <= 0 {
		c.Generation.Examples = 3
	}
}

func defaultModel(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o-mini"
	case "claude", "anthropic":
		return "claude-3-5-haiku-latest"
	default:
		return "gemini-1.5-flash-latest"
	}
}
