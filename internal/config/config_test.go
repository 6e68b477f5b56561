package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Options.Base != "views" {
		t.Errorf("Options.Base = %q, want %q", cfg.Options.Base, "views")
	}
	if cfg.Options.QuoteChar != `"` {
		t.Errorf("Options.QuoteChar = %q, want %q", cfg.Options.QuoteChar, `"`)
	}
	if cfg.Options.Target != "js" {
		t.Errorf("Options.Target = %q, want %q", cfg.Options.Target, "js")
	}
	if got := cfg.Options.Indent(); got != "  " {
		t.Errorf("Options.Indent() = %q, want two spaces", got)
	}
	if cfg.Options.UseStrict {
		t.Error("Options.UseStrict = true, want false")
	}
	if cfg.Options.Process.Enabled {
		t.Error("Options.Process.Enabled = true, want false")
	}
	if len(cfg.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(cfg.Files))
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   []FileGroup
		wantErr error
	}{
		{
			name:    "no file groups is valid",
			files:   nil,
			wantErr: nil,
		},
		{
			name:    "complete group is valid",
			files:   []FileGroup{{Src: StringList{"a.html"}, Dest: "out.js"}},
			wantErr: nil,
		},
		{
			name:    "missing dest",
			files:   []FileGroup{{Src: StringList{"a.html"}, Dest: "  "}},
			wantErr: ErrInvalidFileGroup,
		},
		{
			name:    "missing sources",
			files:   []FileGroup{{Dest: "out.js"}},
			wantErr: ErrInvalidFileGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Files = tt.files
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("full config loads options and groups", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "html2js.yaml", `options:
  base: "src"
  quoteChar: "'"
  indentString: "\t"
  target: "coffee"
  useStrict: true
  fileHeaderString: "/* header */"
  fileFooterString: "/* footer */"
  htmlmin:
    collapseWhitespace: true
    removeComments: true
files:
  - src: ["views/*.html", "!views/skip.html"]
    dest: "dist/templates.js"
  - src: "partials/nav.html"
    dest: "dist/nav.js"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if cfg.Options.QuoteChar != "'" {
			t.Errorf("QuoteChar = %q, want %q", cfg.Options.QuoteChar, "'")
		}
		if got := cfg.Options.Indent(); got != "\t" {
			t.Errorf("Indent() = %q, want tab", got)
		}
		if cfg.Options.Target != "coffee" {
			t.Errorf("Target = %q, want coffee", cfg.Options.Target)
		}
		if !cfg.Options.UseStrict {
			t.Error("UseStrict = false, want true")
		}
		wantMin := map[string]bool{"collapseWhitespace": true, "removeComments": true}
		if diff := cmp.Diff(wantMin, cfg.Options.HTMLMin); diff != "" {
			t.Errorf("HTMLMin mismatch (-want +got):\n%s", diff)
		}
		wantFiles := []FileGroup{
			{Src: StringList{"views/*.html", "!views/skip.html"}, Dest: "dist/templates.js"},
			{Src: StringList{"partials/nav.html"}, Dest: "dist/nav.js"},
		}
		if diff := cmp.Diff(wantFiles, cfg.Files); diff != "" {
			t.Errorf("Files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty indentString keeps empty indent", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "options:\n  indentString: \"\"\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got := cfg.Options.Indent(); got != "" {
			t.Errorf("Indent() = %q, want empty", got)
		}
	})

	t.Run("missing options keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "options:\n  useStrict: true\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Options.QuoteChar != `"` || cfg.Options.Target != "js" || cfg.Options.Base != "views" {
			t.Errorf("defaults lost: %+v", cfg.Options)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/html2js.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "options: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "options:\n  quoteCharacter: \"'\"\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("group without dest returns ErrInvalidFileGroup", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "nodest.yaml", "files:\n  - src: a.html\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidFileGroup) {
			t.Errorf("error = %v, want ErrInvalidFileGroup", err)
		}
	})
}

func TestLoadConfig_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Process
	}{
		{
			name:    "boolean true",
			content: "options:\n  process: true\n",
			want:    Process{Enabled: true},
		},
		{
			name:    "boolean false",
			content: "options:\n  process: false\n",
			want:    Process{},
		},
		{
			name: "mapping enables processing",
			content: `options:
  process:
    engine: go
    delimiters: ["[[", "]]"]
    data:
      title: Home
`,
			want: Process{
				Enabled:    true,
				Engine:     "go",
				Delimiters: []string{"[[", "]]"},
				Data:       map[string]any{"title": "Home"},
			},
		},
		{
			name:    "mapping with enabled false",
			content: "options:\n  process:\n    enabled: false\n    engine: pongo2\n",
			want:    Process{Engine: "pongo2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, t.TempDir(), "p.yaml", tt.content)
			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.Options.Process); diff != "" {
				t.Errorf("Process mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindDefault(t *testing.T) {
	t.Parallel()

	t.Run("prefers yaml over yml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeConfig(t, dir, "html2js.yml", "")
		want := writeConfig(t, dir, "html2js.yaml", "")
		if got := FindDefault(dir); got != want {
			t.Errorf("FindDefault() = %q, want %q", got, want)
		}
	})

	t.Run("returns empty when absent", func(t *testing.T) {
		t.Parallel()

		if got := FindDefault(t.TempDir()); got != "" {
			t.Errorf("FindDefault() = %q, want empty", got)
		}
	})
}

// Notes:
// - resolveConfigPath looks in the working directory, so it runs without
//   t.Parallel and restores the directory afterwards.
func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "project.yml", "options:\n  target: coffee\n")
	t.Chdir(dir)

	path, err := resolveConfigPath("project")
	if err != nil {
		t.Fatalf("resolveConfigPath() error = %v", err)
	}
	if path != "project.yml" {
		t.Errorf("resolveConfigPath() = %q, want %q", path, "project.yml")
	}

	cfg, err := LoadConfig("project")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Options.Target != "coffee" {
		t.Errorf("Target = %q, want coffee", cfg.Options.Target)
	}

	_, err = resolveConfigPath("missing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("work")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("SearchPaths()[:2] = %v, want local yaml then yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(filepath.ToSlash(p), "go-html2js/work.y") {
			t.Errorf("user path %q not under go-html2js", p)
		}
	}
}
