package main

import (
	"fmt"
	"io"
	"strings"

	html2js "github.com/alnah/go-html2js"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2js [command] [flags] [sources...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Compile HTML templates into script modules (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2js help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2js build [sources...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile HTML templates into JavaScript or CoffeeScript modules.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  sources    Template files or glob patterns (** supported, !pattern excludes)")
	fmt.Fprintln(w, "             Replace the config file groups; require --output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Bundle path for sources given as arguments")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: ./html2js.yaml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Module:")
	fmt.Fprintf(w, "  -t, --target <s>          Output language: %s (default: %s)\n", strings.Join(html2js.Targets(), ", "), html2js.TargetJS)
	fmt.Fprintf(w, "      --quote-char <c>      Literal quote character (default: %s)\n", html2js.DefaultQuoteChar)
	fmt.Fprintln(w, "      --indent <s>          Indentation unit (default: two spaces)")
	fmt.Fprintln(w, "      --header <s>          Text prepended to each bundle")
	fmt.Fprintln(w, "      --footer <s>          Text appended to each bundle")
	fmt.Fprintln(w, "      --use-strict          Emit a \"use strict\" directive")
	fmt.Fprintln(w, "      --base <dir>          Base directory hint (informational)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --markdown            Render .md and .markdown sources to HTML")
	fmt.Fprintln(w, "      --process             Run sources through the template engine")
	fmt.Fprintf(w, "      --process-engine <s>  Template engine: %s (implies --process)\n", strings.Join(html2js.Engines(), ", "))
	fmt.Fprintln(w, "      --htmlmin <keys>      Minifier options, comma-separated:")
	for _, key := range html2js.HTMLMinKeys() {
		fmt.Fprintf(w, "                              %s\n", key)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show each written bundle")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2JS_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  HTML2JS_TARGET            Output language")
	fmt.Fprintln(w, "  HTML2JS_QUOTE_CHAR        Literal quote character")
	fmt.Fprintln(w, "  HTML2JS_INDENT            Indentation unit")
	fmt.Fprintln(w, "  HTML2JS_USE_STRICT        Emit a \"use strict\" directive (true/false)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success, 1 general error, 2 usage or config, 3 I/O, 4 template content")
}

// printVersionUsage prints usage for the version command.
func printVersionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2js version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show version information.")
}

// printHelpUsage prints usage for the help command.
func printHelpUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2js help [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show help for a command.")
}

// runHelp prints help for the command in args and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "version":
		printVersionUsage(env.Stdout)
	case "help":
		printHelpUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
