package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid cpp backend",
			config: Config{
				Whisper: WhisperConfig{
					Backend:   "cpp",
					ModelPath: "models/ggml-large-v3.bin",
				},
			},
			wantErr: false,
		},
		{
			// Metadata-only commands never build a transcriber, so a
			// bare whisper section is acceptable at load time.
			name: "cpp backend without model path",
			config: Config{
				Whisper: WhisperConfig{Backend: "cpp"},
			},
			wantErr: false,
		},
		{
			name: "openai backend without key",
			config: Config{
				Whisper: WhisperConfig{Backend: "openai"},
			},
			wantErr: false,
		},
		{
			name: "openai backend with key",
			config: Config{
				Whisper: WhisperConfig{Backend: "openai", OpenAIKey: "sk-test"},
			},
			wantErr: false,
		},
		{
			name: "unknown backend",
			config: Config{
				Whisper: WhisperConfig{Backend: "bard", ModelPath: "x"},
			},
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

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelPath: "models/ggml-large-v3.bin"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Downloader.YouTubeTimeout != 300 {
		t.Errorf("YouTubeTimeout = %d, want 300", cfg.Downloader.YouTubeTimeout)
	}
	if cfg.Downloader.TikTokTimeout != 180 {
		t.Errorf("TikTokTimeout = %d, want 180", cfg.Downloader.TikTokTimeout)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 1 {
		t.Errorf("Channels = %d, want 1", cfg.Audio.Channels)
	}
	if cfg.Whisper.Model != "large-v3" {
		t.Errorf("Model = %q, want large-v3", cfg.Whisper.Model)
	}
	if cfg.Server.CacheTTL != 3600 {
		t.Errorf("CacheTTL = %d, want 3600", cfg.Server.CacheTTL)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	content := `
downloader:
  binary_path: "/usr/local/bin/yt-dlp"
  youtube_timeout: 120

whisper:
  backend: "cpp"
  model_path: "models/ggml-small.bin"
  language: "vi"

logging:
  level: "debug"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Downloader.BinaryPath != "/usr/local/bin/yt-dlp" {
		t.Errorf("BinaryPath = %v", cfg.Downloader.BinaryPath)
	}
	if cfg.Downloader.YouTubeTimeout != 120 {
		t.Errorf("YouTubeTimeout = %d, want 120", cfg.Downloader.YouTubeTimeout)
	}
	// Defaults still fill unset fields.
	if cfg.Downloader.TikTokTimeout != 180 {
		t.Errorf("TikTokTimeout = %d, want 180", cfg.Downloader.TikTokTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	content := `
whisper:
  backend: "cpp"
  model: "small"
  model_path: "models/ggml-small.bin"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TRANSCRIPTOR_WHISPER_MODEL", "large-v3")
	t.Setenv("TRANSCRIPTOR_LOG_LEVEL", "debug")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "large-v3" {
		t.Errorf("Model = %q, want env override large-v3", cfg.Whisper.Model)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
