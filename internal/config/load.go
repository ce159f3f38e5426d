package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

// envOverrides are applied on top of the YAML file, so deployments can
// tune the tool without editing config files.
type envOverrides struct {
	LogLevel       string `env:"TRANSCRIPTOR_LOG_LEVEL"`
	WhisperBackend string `env:"TRANSCRIPTOR_WHISPER_BACKEND"`
	WhisperModel   string `env:"TRANSCRIPTOR_WHISPER_MODEL"`
	ServerAddr     string `env:"TRANSCRIPTOR_ADDR"`
	CacheTTL       int    `env:"TRANSCRIPTOR_CACHE_TTL"`
	TempDir        string `env:"TRANSCRIPTOR_TEMP_DIR"`
	OpenAIKey      string `env:"OPENAI_API_KEY"`
	GeminiKey      string `env:"GEMINI_API_KEY"`
}

// Load reads a YAML config file, overlays environment variables, fills
// defaults, and validates. An empty path loads defaults plus env only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	ov := envOverrides{}
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	cfg.apply(ov)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) apply(ov envOverrides) {
	if ov.LogLevel != "" {
		c.Logging.Level = ov.LogLevel
	}
	if ov.WhisperBackend != "" {
		c.Whisper.Backend = ov.WhisperBackend
	}
	if ov.WhisperModel != "" {
		c.Whisper.Model = ov.WhisperModel
	}
	if ov.ServerAddr != "" {
		c.Server.Addr = ov.ServerAddr
	}
	if ov.CacheTTL != 0 {
		c.Server.CacheTTL = ov.CacheTTL
	}
	if ov.TempDir != "" {
		c.Paths.Temp = ov.TempDir
	}
	c.Whisper.OpenAIKey = ov.OpenAIKey
	c.Gemini.APIKey = ov.GeminiKey
}
