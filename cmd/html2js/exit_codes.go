package main

import (
	"errors"
	"os"

	html2js "github.com/alnah/go-html2js"
	"github.com/alnah/go-html2js/internal/config"
)

// Exit codes for html2js CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All bundles written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Template unreadable, bundle not writable
	ExitContent = 4 // Template processing, Markdown or minification failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, html2js.ErrProcess) ||
		errors.Is(err, html2js.ErrMinification) ||
		errors.Is(err, html2js.ErrMarkdownRender) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, html2js.ErrReadTemplate) ||
		errors.Is(err, html2js.ErrWriteBundle) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidFileGroup) ||
		errors.Is(err, html2js.ErrUnsupportedTarget) ||
		errors.Is(err, html2js.ErrInvalidQuoteChar) ||
		errors.Is(err, html2js.ErrInvalidIndent) ||
		errors.Is(err, html2js.ErrUnknownEngine) ||
		errors.Is(err, html2js.ErrInvalidDelimiters) ||
		errors.Is(err, html2js.ErrEmptyDestination) ||
		errors.Is(err, ErrNoFileGroups) ||
		errors.Is(err, ErrOutputRequired) ||
		errors.Is(err, ErrInvalidPattern) {
		return ExitUsage
	}

	return ExitGeneral
}
