package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	html2js "github.com/alnah/go-html2js"
	"github.com/alnah/go-html2js/internal/config"
	"github.com/alnah/go-html2js/internal/fileutil"
	"github.com/alnah/go-html2js/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoFileGroups   = errors.New("no file groups to compile")
	ErrOutputRequired = errors.New("--output is required when sources are given")
	ErrInvalidPattern = errors.New("invalid source pattern")
)

// runBuildCmd runs the build command and returns the exit code.
func runBuildCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\nRun 'html2js help build' for usage.\n", err)
		return ExitUsage
	}

	if err := runBuild(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configNameFor(flags, env)))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runBuild layers the configuration, compiles every group and reports
// the outcome.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadBuildConfig(configNameFor(flags, env))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	groups, err := resolveGroups(positional, flags.output, cfg.Files)
	if err != nil {
		return err
	}

	opts, ignored := buildOptions(&cfg.Options)
	if !flags.common.quiet {
		for _, key := range ignored {
			fmt.Fprintf(env.Stderr, "warning: ignoring unknown htmlmin option %q\n", key)
		}
	}

	comp, err := html2js.NewCompiler(opts)
	if err != nil {
		return err
	}

	result, err := comp.Compile(ctx, groups)
	printResult(result, err == nil, flags.common.quiet, flags.common.verbose, env)
	return err
}

// configNameFor returns the --config value, or HTML2JS_CONFIG when the
// flag is absent.
func configNameFor(flags *buildFlags, env *Environment) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return env.Getenv("HTML2JS_CONFIG")
}

// loadBuildConfig loads the named config, or html2js.yaml from the
// current directory when no name is given. Without either, defaults
// apply and file groups must come from the command line.
func loadBuildConfig(name string) (*config.Config, error) {
	if name != "" {
		return config.LoadConfig(name)
	}
	if path := config.FindDefault("."); path != "" {
		return config.LoadFile(path)
	}
	return config.DefaultConfig(), nil
}

// mergeFlags applies flags given on the command line over cfg.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	o := &cfg.Options

	if flags.changed("target") {
		o.Target = flags.module.target
	}
	if flags.changed("quote-char") {
		o.QuoteChar = flags.module.quoteChar
	}
	if flags.changed("indent") {
		indent := flags.module.indent
		o.IndentString = &indent
	}
	if flags.changed("header") {
		o.FileHeaderString = flags.module.header
	}
	if flags.changed("footer") {
		o.FileFooterString = flags.module.footer
	}
	if flags.changed("use-strict") {
		o.UseStrict = flags.module.useStrict
	}
	if flags.changed("base") {
		o.Base = flags.module.base
	}
	if flags.changed("markdown") {
		o.Markdown = flags.content.markdown
	}
	if flags.changed("process") {
		o.Process.Enabled = flags.content.process
	}
	if flags.changed("process-engine") {
		o.Process.Enabled = true
		o.Process.Engine = flags.content.processEngine
	}
	if flags.changed("htmlmin") {
		o.HTMLMin = make(map[string]bool, len(flags.content.htmlmin))
		for _, key := range flags.content.htmlmin {
			o.HTMLMin[key] = true
		}
	}
}

// resolveGroups returns the groups to compile with their sources
// expanded. Positional sources replace the config file groups.
func resolveGroups(positional []string, output string, files []config.FileGroup) ([]html2js.FileGroup, error) {
	switch {
	case len(positional) > 0 && output == "":
		return nil, ErrOutputRequired
	case len(positional) > 0:
		files = []config.FileGroup{{Src: positional, Dest: output}}
	case output != "":
		return nil, fmt.Errorf("%w: --output given without sources", ErrNoFileGroups)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: add sources with --output or a files section to the config", ErrNoFileGroups)
	}

	groups := make([]html2js.FileGroup, 0, len(files))
	for _, f := range files {
		sources, err := fileutil.ExpandPatterns(f.Src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		groups = append(groups, html2js.FileGroup{Sources: sources, Dest: f.Dest})
	}
	return groups, nil
}

// buildOptions converts config options into compiler options. It also
// returns the htmlmin keys the minifier does not know.
func buildOptions(o *config.Options) (*html2js.Options, []string) {
	htmlMin, ignored := html2js.ParseHTMLMinOptions(o.HTMLMin)

	opts := &html2js.Options{
		Base:       o.Base,
		QuoteChar:  o.QuoteChar,
		FileHeader: o.FileHeaderString,
		FileFooter: o.FileFooterString,
		Indent:     o.Indent(),
		Target:     o.Target,
		UseStrict:  o.UseStrict,
		Markdown:   o.Markdown,
		HTMLMin:    htmlMin,
		Process:    html2js.ProcessDisabled(),
	}
	if o.Process.Enabled {
		opts.Process = html2js.ProcessTemplate(html2js.TemplateConfig{
			Engine:     o.Process.Engine,
			Data:       o.Process.Data,
			Delimiters: o.Process.Delimiters,
		})
	}
	return opts, ignored
}

// printResult reports warnings, and on success the written bundles and
// the summary line. Quiet mode only lets errors through.
func printResult(r *html2js.Result, ok, quiet, verbose bool, env *Environment) {
	if quiet || r == nil {
		return
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}

	if verbose {
		for _, b := range r.Bundles {
			fmt.Fprintf(env.Stdout, "%s (%d templates)\n", b.Dest, len(b.Templates))
			for _, name := range b.Templates {
				fmt.Fprintf(env.Stdout, "  %s\n", name)
			}
		}
	}

	if ok {
		fmt.Fprintln(env.Stdout, r.Summary())
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, html2js.ErrUnsupportedTarget):
		return hints.ForUnsupportedTarget(html2js.Targets())
	case errors.Is(err, html2js.ErrUnknownEngine):
		return hints.ForUnknownEngine(html2js.Engines())
	case errors.Is(err, html2js.ErrInvalidQuoteChar):
		return hints.ForQuoteChar()
	case errors.Is(err, html2js.ErrMinification):
		return hints.ForMinification()
	case errors.Is(err, html2js.ErrWriteBundle):
		return hints.ForOutputDirectory()
	}
	return ""
}
