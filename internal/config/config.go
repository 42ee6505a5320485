package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

type AppConfig struct {
	// ResetDelay is how long a finished game stays on the board before a
	// new one starts. Zero waits for an explicit reset.
	ResetDelay time.Duration

	// MessagesDir overrides the embedded message catalog.
	MessagesDir string

	// BoardGlyphs renders pieces as unicode glyphs instead of FEN letters.
	BoardGlyphs bool

	// ShowCoordinates prints file and rank labels around the board.
	ShowCoordinates bool
}

// fileConfig is the YAML shape of CHESS_CONFIG.
type fileConfig struct {
	ResetDelay      string `yaml:"reset_delay"`
	MessagesDir     string `yaml:"messages_dir"`
	BoardGlyphs     *bool  `yaml:"board_glyphs"`
	ShowCoordinates *bool  `yaml:"show_coordinates"`
}

func Default() *AppConfig {
	return &AppConfig{
		ResetDelay:      3 * time.Second,
		BoardGlyphs:     true,
		ShowCoordinates: true,
	}
}

// Load applies defaults, then the YAML file named by CHESS_CONFIG, then
// environment overrides.
func Load() (*AppConfig, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CHESS_CONFIG")); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("CHESS_RESET_DELAY")); v != "" {
		d, err := parseDelay(v)
		if err != nil {
			return nil, fmt.Errorf("CHESS_RESET_DELAY: %w", err)
		}
		cfg.ResetDelay = d
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_MESSAGES_DIR")); v != "" {
		cfg.MessagesDir = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_BOARD_GLYPHS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.BoardGlyphs = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_SHOW_COORDINATES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.ShowCoordinates = b
		}
	}

	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if v := strings.TrimSpace(fc.ResetDelay); v != "" {
		d, err := parseDelay(v)
		if err != nil {
			return fmt.Errorf("config reset_delay: %w", err)
		}
		c.ResetDelay = d
	}
	if v := strings.TrimSpace(fc.MessagesDir); v != "" {
		c.MessagesDir = v
	}
	if fc.BoardGlyphs != nil {
		c.BoardGlyphs = *fc.BoardGlyphs
	}
	if fc.ShowCoordinates != nil {
		c.ShowCoordinates = *fc.ShowCoordinates
	}
	return nil
}

// parseDelay accepts Go durations ("1500ms") or plain seconds ("3").
func parseDelay(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative delay %d", n)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative delay %s", v)
	}
	return d, nil
}
