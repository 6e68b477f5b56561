package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-html2js/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "HTML2JS_"

// envConfig holds option overrides from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// HTML2JS_CONFIG is read by configNameFor.
type envConfig struct {
	Target    string // HTML2JS_TARGET: js or coffee
	QuoteChar string // HTML2JS_QUOTE_CHAR: literal delimiter
	Indent    string // HTML2JS_INDENT: indentation unit
	UseStrict *bool  // HTML2JS_USE_STRICT: strconv.ParseBool syntax
}

// knownEnvVars lists valid HTML2JS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTML2JS_CONFIG":     true,
	"HTML2JS_TARGET":     true,
	"HTML2JS_QUOTE_CHAR": true,
	"HTML2JS_INDENT":     true,
	"HTML2JS_USE_STRICT": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		Target:    getenv("HTML2JS_TARGET"),
		QuoteChar: getenv("HTML2JS_QUOTE_CHAR"),
		Indent:    getenv("HTML2JS_INDENT"),
	}

	if v := getenv("HTML2JS_USE_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseStrict = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized HTML2JS_* variables.
// Helps catch typos like HTML2JS_QUOTE instead of HTML2JS_QUOTE_CHAR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Target != "" {
		cfg.Options.Target = env.Target
	}
	if env.QuoteChar != "" {
		cfg.Options.QuoteChar = env.QuoteChar
	}
	if env.Indent != "" {
		indent := env.Indent
		cfg.Options.IndentString = &indent
	}
	if env.UseStrict != nil {
		cfg.Options.UseStrict = *env.UseStrict
	}
}
