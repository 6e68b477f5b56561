package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// moduleFlags holds flags shaping the generated module.
type moduleFlags struct {
	target    string
	quoteChar string
	indent    string
	header    string
	footer    string
	useStrict bool
	base      string
}

// contentFlags holds flags for the per-template pipeline.
type contentFlags struct {
	markdown      bool
	process       bool
	processEngine string
	htmlmin       []string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	module  moduleFlags
	content contentFlags

	// set records flags given on the command line, so an explicit empty
	// or false value still overrides the config file.
	set map[string]bool
}

// changed reports whether name was given on the command line.
func (f *buildFlags) changed(name string) bool {
	return f.set[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show each written bundle")
}

// addModuleFlags adds module shape flags to a FlagSet.
func addModuleFlags(fs *flag.FlagSet, f *moduleFlags) {
	fs.StringVarP(&f.target, "target", "t", "", "output language: js, coffee")
	fs.StringVar(&f.quoteChar, "quote-char", "", "quote character of generated literals")
	fs.StringVar(&f.indent, "indent", "", "indentation unit of generated code")
	fs.StringVar(&f.header, "header", "", "text prepended to each bundle")
	fs.StringVar(&f.footer, "footer", "", "text appended to each bundle")
	fs.BoolVar(&f.useStrict, "use-strict", false, "emit a \"use strict\" directive")
	fs.StringVar(&f.base, "base", "", "base directory hint (informational)")
}

// addContentFlags adds template pipeline flags to a FlagSet.
func addContentFlags(fs *flag.FlagSet, f *contentFlags) {
	fs.BoolVar(&f.markdown, "markdown", false, "render .md and .markdown sources to HTML")
	fs.BoolVar(&f.process, "process", false, "run sources through the template engine")
	fs.StringVar(&f.processEngine, "process-engine", "", "template engine: pongo2, go (implies --process)")
	fs.StringSliceVar(&f.htmlmin, "htmlmin", nil, "enable minifier options: key[,key]")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{set: map[string]bool{}}

	fs.StringVarP(&f.output, "output", "o", "", "bundle path for sources given as arguments")

	addCommonFlags(fs, &f.common)
	addModuleFlags(fs, &f.module)
	addContentFlags(fs, &f.content)

	// Errors and help are reported by runBuildCmd.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})

	return f, fs.Args(), nil
}
