package main

// Notes:
// - Environment lookups go through Environment.Getenv and Environ, so these
//   tests feed maps instead of mutating the process environment and can run
//   in parallel.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-html2js/internal/config"
)

func getenvFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads all variables", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(map[string]string{
			"HTML2JS_TARGET":     "coffee",
			"HTML2JS_QUOTE_CHAR": "'",
			"HTML2JS_INDENT":     "\t",
			"HTML2JS_USE_STRICT": "true",
		}))

		if cfg.Target != "coffee" {
			t.Errorf("Target = %q, want coffee", cfg.Target)
		}
		if cfg.QuoteChar != "'" {
			t.Errorf("QuoteChar = %q, want '", cfg.QuoteChar)
		}
		if cfg.Indent != "\t" {
			t.Errorf("Indent = %q, want tab", cfg.Indent)
		}
		if cfg.UseStrict == nil || !*cfg.UseStrict {
			t.Errorf("UseStrict = %v, want true", cfg.UseStrict)
		}
	})

	t.Run("invalid boolean is ignored", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(map[string]string{"HTML2JS_USE_STRICT": "sometimes"}))
		if cfg.UseStrict != nil {
			t.Errorf("UseStrict = %v, want nil", *cfg.UseStrict)
		}
	})

	t.Run("empty environment", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(nil))
		if cfg.Target != "" || cfg.QuoteChar != "" || cfg.Indent != "" || cfg.UseStrict != nil {
			t.Errorf("loadEnvConfig() = %+v, want zero", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Unknown variable detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	t.Run("warns on unknown HTML2JS_ vars", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf, []string{"HTML2JS_QUOTE=x", "HTML2JS_TARGETS=js"})

		for _, want := range []string{"HTML2JS_QUOTE ", "HTML2JS_TARGETS", "typo?"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q, got: %s", want, buf.String())
			}
		}
	})

	t.Run("no warning for known vars", func(t *testing.T) {
		t.Parallel()

		environ := make([]string, 0, len(knownEnvVars))
		for name := range knownEnvVars {
			environ = append(environ, name+"=x")
		}

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf, environ)
		if buf.Len() > 0 {
			t.Errorf("should not warn for known vars, got: %s", buf.String())
		}
	})

	t.Run("ignores other vars", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf, []string{"PATH=/usr/bin", "HTML2JSX=1"})
		if buf.Len() > 0 {
			t.Errorf("should not warn, got: %s", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Config application with priority
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Options.Target = "js"
		strict := true
		applyEnvConfig(&envConfig{Target: "coffee", QuoteChar: "'", Indent: "    ", UseStrict: &strict}, cfg)

		if cfg.Options.Target != "coffee" {
			t.Errorf("Target = %q, want coffee", cfg.Options.Target)
		}
		if cfg.Options.QuoteChar != "'" {
			t.Errorf("QuoteChar = %q, want '", cfg.Options.QuoteChar)
		}
		if got := cfg.Options.Indent(); got != "    " {
			t.Errorf("Indent() = %q, want four spaces", got)
		}
		if !cfg.Options.UseStrict {
			t.Error("UseStrict = false, want true")
		}
	})

	t.Run("unset env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Options.Target = "coffee"
		cfg.Options.UseStrict = true
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Options.Target != "coffee" || !cfg.Options.UseStrict {
			t.Errorf("config changed: %+v", cfg.Options)
		}
	})

	t.Run("explicit false disables strict", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Options.UseStrict = true
		strict := false
		applyEnvConfig(&envConfig{UseStrict: &strict}, cfg)

		if cfg.Options.UseStrict {
			t.Error("UseStrict = true, want false")
		}
	})
}

// ---------------------------------------------------------------------------
// TestKnownEnvVars - Registry consistency
// ---------------------------------------------------------------------------

func TestKnownEnvVars(t *testing.T) {
	t.Parallel()

	for name := range knownEnvVars {
		if !strings.HasPrefix(name, envPrefix) {
			t.Errorf("%s lacks the %s prefix", name, envPrefix)
		}
	}
	if !knownEnvVars["HTML2JS_CONFIG"] {
		t.Error("HTML2JS_CONFIG must be known")
	}
}
