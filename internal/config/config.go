// Package config loads html2js task configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-html2js/internal/fileutil"
	"github.com/alnah/go-html2js/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidFileGroup = errors.New("invalid file group")
)

// DefaultName is the config file looked up when no --config is given.
const DefaultName = "html2js"

// userConfigDirName is the directory under os.UserConfigDir searched for named configs.
const userConfigDirName = "go-html2js"

// Config holds the task options and the file groups to compile.
type Config struct {
	Options Options     `yaml:"options"`
	Files   []FileGroup `yaml:"files"`
}

// Options mirrors the task options of the compiler.
type Options struct {
	Base             string          `yaml:"base"`             // Informational only
	QuoteChar        string          `yaml:"quoteChar"`        // Default: "
	FileHeaderString string          `yaml:"fileHeaderString"` // Prepended to every bundle
	FileFooterString string          `yaml:"fileFooterString"` // Appended to every bundle
	IndentString     *string         `yaml:"indentString"`     // Default: two spaces; nil = default
	Target           string          `yaml:"target"`           // "js" or "coffee" (default: "js")
	UseStrict        bool            `yaml:"useStrict"`
	Markdown         bool            `yaml:"markdown"` // Render .md/.markdown sources to HTML
	HTMLMin          map[string]bool `yaml:"htmlmin"`  // Empty = no minification
	Process          Process         `yaml:"process"`
}

// FileGroup is one bundle: its sources and destination.
type FileGroup struct {
	Src  StringList `yaml:"src"`
	Dest string     `yaml:"dest"`
}

// Indent returns the configured indent or the two-space default.
func (o *Options) Indent() string {
	if o.IndentString == nil {
		return "  "
	}
	return *o.IndentString
}

// DefaultConfig returns options with defaults filled in and no file groups.
func DefaultConfig() *Config {
	return &Config{
		Options: Options{
			Base:      "views",
			QuoteChar: `"`,
			Target:    "js",
		},
	}
}

// Validate checks the file groups. Option values are validated by the
// compiler, which knows the supported targets and engines.
func (c *Config) Validate() error {
	for i, group := range c.Files {
		if strings.TrimSpace(group.Dest) == "" {
			return fmt.Errorf("%w: files[%d].dest: required", ErrInvalidFileGroup, i)
		}
		if len(group.Src) == 0 {
			return fmt.Errorf("%w: files[%d].src: at least one source required", ErrInvalidFileGroup, i)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Missing options keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	return LoadFile(configPath)
}

// FindDefault returns the path of html2js.yaml or html2js.yml in dir, or
// "" when neither exists.
func FindDefault(dir string) string {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, DefaultName+ext)
		if fileutil.FileExists(path) {
			return path
		}
	}
	return ""
}

// LoadFile loads the config file at path. Missing options keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults restores defaults for options an explicit empty value
// cannot mean anything for.
func (c *Config) applyDefaults() {
	if c.Options.QuoteChar == "" {
		c.Options.QuoteChar = `"`
	}
	if c.Options.Target == "" {
		c.Options.Target = "js"
	}
}

// SearchPaths lists, in lookup order, the files tried for a config name:
// <name>.yaml and <name>.yml in the current directory, then in
// ~/.config/go-html2js/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, path := range triedPaths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
