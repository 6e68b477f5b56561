// Package html2js compiles HTML templates into JavaScript or CoffeeScript
// modules that register each template's content under its source path.
//
// # Quick Start
//
// Create a compiler and compile file groups, one bundle per group:
//
//	comp, err := html2js.NewCompiler(html2js.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := comp.Compile(ctx, []html2js.FileGroup{{
//	    Sources: []string{"views/index.html", "views/item.html"},
//	    Dest:    "build/templates.js",
//	}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//	    log.Println(w)
//	}
//	fmt.Println(result.Summary())
//
// The bundle looks like:
//
//	;(function (exports, undefined) {
//	  exports.templates["views/index.html"] = "<h1>Home</h1>";
//	  exports.templates["views/item.html"] = "<li>\n" +
//	    "</li>";
//	})(this);
//
// # Processing Pipeline
//
// Each source goes through these stages:
//
//  1. Read from the FileSystem (missing sources are skipped with a warning)
//  2. Optional transformation (see Process)
//  3. Optional Markdown rendering for .md and .markdown sources
//  4. Optional HTML minification (see HTMLMinOptions)
//  5. Escaping into a string literal (see EscapeContent)
//
// Fragments are joined, wrapped in the target dialect's module pattern,
// framed by the header and footer, and written with the configured line
// ending.
//
// # Errors
//
// Configuration errors (unsupported target, invalid quote character,
// unknown engine) are returned by NewCompiler, before any I/O. During
// Compile, read, processing, minification and write errors stop the run.
// Bundles written before the error are kept. Match errors with errors.Is:
//
//	if errors.Is(err, html2js.ErrMinification) {
//	    // the message names the offending source
//	}
package html2js
