package config

import "fmt"

type Config struct {
	Downloader DownloaderConfig `yaml:"downloader"`
	Audio      AudioConfig      `yaml:"audio"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Scrape     ScrapeConfig     `yaml:"scrape"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Server     ServerConfig     `yaml:"server"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DownloaderConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	YouTubeTimeout int    `yaml:"youtube_timeout"` // seconds
	TikTokTimeout  int    `yaml:"tiktok_timeout"`  // seconds
	SubtitleLangs  string `yaml:"subtitle_langs"`
}

type AudioConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
}

type WhisperConfig struct {
	Backend    string `yaml:"backend"` // "cpp" or "openai"
	Model      string `yaml:"model"`
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
	OpenAIKey  string `yaml:"-"` // env only, never from file
}

type ScrapeConfig struct {
	Timeout       int `yaml:"timeout"` // seconds
	YouTubeDelay  int `yaml:"youtube_delay"`
	TikTokDelay   int `yaml:"tiktok_delay"`
	FacebookDelay int `yaml:"facebook_delay"`
	DouyinDelay   int `yaml:"douyin_delay"`
}

type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"` // env only
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	CacheTTL int    `yaml:"cache_ttl"` // seconds
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Validate fills defaults and rejects configurations that cannot work.
func (c *Config) Validate() error {
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.YouTubeTimeout == 0 {
		c.Downloader.YouTubeTimeout = 300
	}
	if c.Downloader.TikTokTimeout == 0 {
		c.Downloader.TikTokTimeout = 180
	}
	if c.Downloader.SubtitleLangs == "" {
		c.Downloader.SubtitleLangs = "vi,en"
	}

	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}

	if c.Whisper.Backend == "" {
		c.Whisper.Backend = "cpp"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "large-v3"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	// Model path and API key requirements are enforced when the
	// transcriber is built, so metadata-only commands work without them.
	switch c.Whisper.Backend {
	case "cpp":
		if c.Whisper.BinaryPath == "" {
			c.Whisper.BinaryPath = "whisper-cli"
		}
	case "openai":
	default:
		return fmt.Errorf("unknown whisper backend: %q", c.Whisper.Backend)
	}

	if c.Scrape.Timeout == 0 {
		c.Scrape.Timeout = 20
	}
	if c.Scrape.YouTubeDelay == 0 {
		c.Scrape.YouTubeDelay = 2
	}
	if c.Scrape.TikTokDelay == 0 {
		c.Scrape.TikTokDelay = 3
	}
	if c.Scrape.FacebookDelay == 0 {
		c.Scrape.FacebookDelay = 3
	}
	if c.Scrape.DouyinDelay == 0 {
		c.Scrape.DouyinDelay = 4
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.CacheTTL == 0 {
		c.Server.CacheTTL = 3600
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
