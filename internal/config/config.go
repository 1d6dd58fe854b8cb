package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Server contains the HTTP listener configuration.
type Server struct {
	ListenAddr   string   `toml:"listen_addr"`
	AllowOrigins []string `toml:"allow_origins"`
}

// Database contains the SQLite database configuration.
type Database struct {
	Path string `toml:"path"`
}

// AI contains the model provider connection settings shared by both
// inference stages.
type AI struct {
	Endpoint          string  `toml:"endpoint"`
	VisionModel       string  `toml:"vision_model"`
	TextModel         string  `toml:"text_model"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	MaxTokens         int     `toml:"max_tokens"`
	VisionTemperature float64 `toml:"vision_temperature"`
	TextTemperature   float64 `toml:"text_temperature"`

	// APIKey comes from the DASHSCOPE_API_KEY environment variable,
	// never from the config file.
	APIKey string `toml:"-"`
}

// Config is the immutable process configuration. It is built once at
// startup and passed into components by reference.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	AI       AI       `toml:"ai"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Server: Server{
			ListenAddr:   ":8080",
			AllowOrigins: []string{"*"},
		},
		Database: Database{
			Path: "restaurant.db",
		},
		AI: AI{
			Endpoint:          "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions",
			VisionModel:       "qwen3-vl-plus",
			TextModel:         "qwen-plus",
			TimeoutSeconds:    30,
			MaxTokens:         2048,
			VisionTemperature: 0.7,
			TextTemperature:   0.8,
		},
	}
}

// Load reads the TOML config file at path, falling back to defaults when
// the file does not exist, then overlays secrets from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults apply
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.AI.APIKey = os.Getenv("DASHSCOPE_API_KEY")

	return cfg, nil
}

// Validate reports configuration that cannot serve requests.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return errors.New("server.listen_addr must not be empty")
	}
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	if c.AI.Endpoint == "" {
		return errors.New("ai.endpoint must not be empty")
	}
	if c.AI.VisionModel == "" || c.AI.TextModel == "" {
		return errors.New("ai.vision_model and ai.text_model must not be empty")
	}
	if c.AI.TimeoutSeconds <= 0 {
		return errors.New("ai.timeout_seconds must be positive")
	}
	if c.AI.APIKey == "" {
		return errors.New("missing DASHSCOPE_API_KEY")
	}
	return nil
}
