package html2js

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-html2js/internal/fileutil"
)

// Options configures a Compiler. Start from DefaultOptions.
type Options struct {
	Base       string          // Informational only; paths are never made relative to it
	QuoteChar  string          // Delimiter of generated literals
	FileHeader string          // Prepended to each bundle, followed by a newline
	FileFooter string          // Appended to each bundle, followed by a newline
	Indent     string          // Whitespace unit of generated indentation
	Target     string          // TargetJS or TargetCoffee
	UseStrict  bool            // Emit a "use strict" directive
	Markdown   bool            // Render .md and .markdown sources to HTML first
	HTMLMin    *HTMLMinOptions // nil disables minification
	Process    Process         // Source transformation before minification
}

// DefaultOptions returns the default task options.
func DefaultOptions() *Options {
	return &Options{
		Base:      "views",
		QuoteChar: DefaultQuoteChar,
		Indent:    DefaultIndent,
		Target:    TargetJS,
		Process:   ProcessDisabled(),
	}
}

// FileGroup lists the sources compiled into one bundle at Dest.
// Sources are compiled in order.
type FileGroup struct {
	Sources []string
	Dest    string
}

// Warning is a recoverable problem. The source it names was skipped.
type Warning struct {
	Path string
	Err  error
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("Source file %q not found.", w.Path)
}

// BundleResult describes one written bundle.
type BundleResult struct {
	Dest      string
	Templates []string // Registered template keys, in bundle order
}

// Result holds what a Compile call completed. It is returned even when
// Compile fails, so callers can report bundles already written.
type Result struct {
	Count    int // Templates compiled across all bundles
	Target   string
	Bundles  []BundleResult
	Warnings []Warning
}

// Summary returns the one-line report of a run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Successfully converted %d html templates to %s.", r.Count, r.Target)
}

// FileSystem abstracts the file operations the compiler needs.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// Compile-time interface implementation check.
var _ FileSystem = osFileSystem{}

// osFileSystem reads from disk and writes atomically, creating parent
// directories as needed.
type osFileSystem struct{}

func (osFileSystem) Exists(path string) bool {
	return fileutil.FileExists(path)
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 -- paths come from the task configuration
}

func (osFileSystem) WriteFile(path string, data []byte) error {
	return fileutil.WriteFileAtomic(path, data)
}

// Line endings accepted by WithLineEnding.
const (
	LineEndingLF   = "\n"
	LineEndingCRLF = "\r\n"
)

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithFileSystem replaces the OS file system.
func WithFileSystem(fs FileSystem) CompilerOption {
	if fs == nil {
		panic("html2js: WithFileSystem requires a non-nil FileSystem")
	}
	return func(c *Compiler) {
		c.fs = fs
	}
}

// WithLineEnding sets the line ending of written bundles.
// Defaults to CRLF on Windows and LF elsewhere.
func WithLineEnding(eol string) CompilerOption {
	if eol != LineEndingLF && eol != LineEndingCRLF {
		panic("html2js: WithLineEnding accepts only LineEndingLF or LineEndingCRLF")
	}
	return func(c *Compiler) {
		c.eol = eol
	}
}

// WithPathSeparator sets the host path separator. When it is not '/',
// backslashes in template keys become forward slashes.
func WithPathSeparator(sep byte) CompilerOption {
	return func(c *Compiler) {
		c.sep = sep
	}
}

func defaultLineEnding() string {
	if runtime.GOOS == "windows" {
		return LineEndingCRLF
	}
	return LineEndingLF
}

const defaultPathSeparator = filepath.Separator
