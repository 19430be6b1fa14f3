// Package config loads and validates pre2tex YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pre2tex/internal/fileutil"
	"github.com/alnah/go-pre2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidMarker   = errors.New("marker must be a single character")
	ErrInvalidMaxLevel = errors.New("maxHeaderLevel must be between 1 and 5")
)

// configDirName is the subdirectory of the user config dir searched for
// named configs.
const configDirName = "go-pre2tex"

// Config holds all configuration for document transpilation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Markup   MarkupConfig   `yaml:"markup"`
	Document DocumentConfig `yaml:"document"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// MarkupConfig overrides the built-in markup constants.
// Empty strings and zero values mean "use the default".
type MarkupConfig struct {
	HeaderMarker   string `yaml:"headerMarker"`   // Single character (default: "#")
	AlignMarker    string `yaml:"alignMarker"`    // Single character (default: ">")
	BreakSentinel  string `yaml:"breakSentinel"`  // Paragraph break line (default: "~~")
	SplitSentinel  string `yaml:"splitSentinel"`  // Formula/comment separator (default: "~~")
	MaxHeaderLevel int    `yaml:"maxHeaderLevel"` // 1-5 (default: 5)
}

// DocumentConfig overrides the static document header and footer.
// Inline values win over file references when both are set.
type DocumentConfig struct {
	Header     string `yaml:"header"`     // Inline LaTeX preamble
	Footer     string `yaml:"footer"`     // Inline LaTeX closing
	HeaderFile string `yaml:"headerFile"` // Path to a preamble file
	FooterFile string `yaml:"footerFile"` // Path to a closing file
}

// DefaultConfig returns a neutral configuration: built-in markup, built-in
// header and footer, output next to the source.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputConfig{DefaultDir: ""},
		Markup:   MarkupConfig{},
		Document: DocumentConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field shapes. Cross-field rules (distinct markers,
// sentinel content) belong to the transpiler's own Markup validation.
func (c *Config) Validate() error {
	if err := validateMarker(c.Markup.HeaderMarker, "headerMarker"); err != nil {
		return err
	}
	if err := validateMarker(c.Markup.AlignMarker, "alignMarker"); err != nil {
		return err
	}
	if lvl := c.Markup.MaxHeaderLevel; lvl != 0 && (lvl < 1 || lvl > 5) {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxLevel, lvl)
	}
	return nil
}

// validateMarker accepts the empty string (meaning default) or exactly one
// byte.
func validateMarker(s, field string) error {
	if s != "" && len(s) != 1 {
		return fmt.Errorf("%w: %s is %q", ErrInvalidMarker, field, s)
	}
	return nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pre2tex/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
