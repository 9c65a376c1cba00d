package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
	"github.com/lunit-heesungyang/palette-manager/internal/share"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir    = ".config/pal"
	projectConfigDir = ".palette"
	configFileName   = "config.yaml"

	maxRecentFormats = 5
)

// Config holds user preferences. Later layers override earlier ones
// key by key: defaults, then the user file, then the project file.
type Config struct {
	DefaultFormat     colorutil.Format   `yaml:"default_format"`
	Language          string             `yaml:"language"`
	ShowColorCodes    bool               `yaml:"show_color_codes"`
	AutoStage         bool               `yaml:"auto_stage"`
	SimilarCount      int                `yaml:"similar_count"`
	ShareBaseURL      string             `yaml:"share_base_url"`
	ShareMaxURLLength int                `yaml:"share_max_url_length"`
	RecentFormats     []colorutil.Format `yaml:"recent_formats,omitempty"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		DefaultFormat:     colorutil.FormatHex,
		Language:          "en-US",
		ShowColorCodes:    true,
		AutoStage:         true,
		SimilarCount:      5,
		ShareBaseURL:      "https://palette.local/",
		ShareMaxURLLength: share.DefaultMaxURLLength,
	}
}

// Load layers the user and project files over the defaults
func Load(projectRoot string) (Config, error) {
	cfg := Default()

	userPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if err := loadConfigFromFile(userPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading user config from %s: %w", userPath, err)
	}

	projectPath := getProjectConfigPath(projectRoot)
	if err := loadConfigFromFile(projectPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading project config from %s: %w", projectPath, err)
	}

	return cfg.normalize(), nil
}

// Save writes cfg as the project config file
func Save(projectRoot string, cfg Config) error {
	path := getProjectConfigPath(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func(projectRoot string) string {
	return filepath.Join(projectRoot, projectConfigDir, configFileName)
}

// loadConfigFromFile decodes a YAML file on top of cfg. A missing file is not an error.
func loadConfigFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// normalize replaces unusable values with defaults
func (c Config) normalize() Config {
	def := Default()
	if f, ok := colorutil.ParseFormat(string(c.DefaultFormat)); ok {
		c.DefaultFormat = f
	} else {
		c.DefaultFormat = def.DefaultFormat
	}
	if c.Language != "zh-CN" && c.Language != "en-US" {
		c.Language = def.Language
	}
	if c.SimilarCount <= 0 || c.SimilarCount > colorutil.MaxSimilarCount {
		c.SimilarCount = def.SimilarCount
	}
	if strings.TrimSpace(c.ShareBaseURL) == "" {
		c.ShareBaseURL = def.ShareBaseURL
	}
	if c.ShareMaxURLLength <= 0 {
		c.ShareMaxURLLength = def.ShareMaxURLLength
	}
	return c
}

// RememberFormat moves f to the front of RecentFormats
func (c *Config) RememberFormat(f colorutil.Format) {
	recent := []colorutil.Format{f}
	for _, r := range c.RecentFormats {
		if r != f && len(recent) < maxRecentFormats {
			recent = append(recent, r)
		}
	}
	c.RecentFormats = recent
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
