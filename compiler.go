package html2js

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-html2js/internal/pipeline"
)

// Compiler turns file groups into template bundles.
// Create with NewCompiler. A Compiler is not safe for concurrent use.
type Compiler struct {
	opts      Options
	dialect   *Dialect
	policy    EscapePolicy
	transform TransformFunc // nil when processing is disabled
	markdown  pipeline.HTMLConverter
	fs        FileSystem
	eol       string
	sep       byte
}

// NewCompiler validates opts and returns a Compiler. A nil opts uses
// DefaultOptions. Every option is checked here, so a configuration error
// is reported before any file is read or written.
func NewCompiler(opts *Options, options ...CompilerOption) (*Compiler, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	c := &Compiler{
		opts: *opts,
		fs:   osFileSystem{},
		eol:  defaultLineEnding(),
		sep:  defaultPathSeparator,
	}
	if opts.HTMLMin != nil {
		minOpts := *opts.HTMLMin
		c.opts.HTMLMin = &minOpts
	}
	for _, opt := range options {
		opt(c)
	}

	dialect, err := LookupDialect(opts.Target)
	if err != nil {
		return nil, err
	}
	c.dialect = dialect

	c.policy = EscapePolicy{QuoteChar: opts.QuoteChar, Indent: opts.Indent}
	if err := c.policy.Validate(); err != nil {
		return nil, err
	}

	c.transform, err = opts.Process.resolve()
	if err != nil {
		return nil, err
	}

	if opts.Markdown {
		c.markdown = pipeline.NewGoldmarkConverter()
	}

	return c, nil
}

// Target returns the name of the output dialect.
func (c *Compiler) Target() string {
	return c.dialect.Name
}

// Compile writes one bundle per group, in order. Missing sources are
// skipped and reported as warnings. The first fatal error stops the run:
// bundles already written stay on disk and later groups are not written.
// The returned Result is never nil.
func (c *Compiler) Compile(ctx context.Context, groups []FileGroup) (*Result, error) {
	result := &Result{Target: c.dialect.Name}

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		bundle, warnings, err := c.compileGroup(ctx, group)
		result.Warnings = append(result.Warnings, warnings...)
		if err != nil {
			return result, err
		}

		result.Count += len(bundle.Templates)
		result.Bundles = append(result.Bundles, bundle)
	}

	return result, nil
}

// compileGroup compiles and writes a single group.
func (c *Compiler) compileGroup(ctx context.Context, group FileGroup) (BundleResult, []Warning, error) {
	bundle := BundleResult{Dest: group.Dest}
	if strings.TrimSpace(group.Dest) == "" {
		return bundle, nil, ErrEmptyDestination
	}

	var warnings []Warning
	fragments := make([]string, 0, len(group.Sources))
	for _, src := range group.Sources {
		if err := ctx.Err(); err != nil {
			return bundle, warnings, err
		}
		if !c.fs.Exists(src) {
			warnings = append(warnings, Warning{Path: src, Err: ErrMissingSource})
			continue
		}

		fragment, err := c.CompileTemplate(src)
		if err != nil {
			return bundle, warnings, err
		}
		fragments = append(fragments, fragment)
		bundle.Templates = append(bundle.Templates, c.normalizePath(src))
	}

	out := c.Bundle(fragments)
	if err := c.fs.WriteFile(group.Dest, []byte(out)); err != nil {
		return bundle, warnings, fmt.Errorf("%w: %s: %v", ErrWriteBundle, group.Dest, err)
	}
	return bundle, warnings, nil
}

// CompileTemplate loads the source at path and returns its registration
// fragment. The source must exist.
func (c *Compiler) CompileTemplate(path string) (string, error) {
	escaped, err := c.loadContent(path)
	if err != nil {
		return "", err
	}
	return c.dialect.Fragment(c.normalizePath(path), escaped, c.policy), nil
}

// Bundle wraps fragments in the dialect module, adds the header and
// footer, and converts line endings to the configured convention.
func (c *Compiler) Bundle(fragments []string) string {
	var b strings.Builder
	if c.opts.FileHeader != "" {
		b.WriteString(c.opts.FileHeader)
		b.WriteString("\n")
	}
	b.WriteString(c.dialect.Wrap(fragments, c.opts.UseStrict, c.policy))
	if c.opts.FileFooter != "" {
		b.WriteString(c.opts.FileFooter)
		b.WriteString("\n")
	}
	return normalizeLineEndings(b.String(), c.eol)
}

// normalizePath turns backslash separators into forward slashes on hosts
// whose separator is not '/'.
func (c *Compiler) normalizePath(path string) string {
	if c.sep == '/' {
		return path
	}
	return strings.ReplaceAll(path, `\`, "/")
}

func normalizeLineEndings(s, eol string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if eol == LineEndingLF {
		return s
	}
	return strings.ReplaceAll(s, "\n", eol)
}
