package html2js

import "errors"

// Sentinel errors for library operations.
var (
	// ErrMissingSource is reported as a warning, never returned from Compile.
	ErrMissingSource = errors.New("source file not found")

	ErrReadTemplate   = errors.New("failed to read template")
	ErrProcess        = errors.New("template processing failed")
	ErrMinification   = errors.New("HTML minification failed")
	ErrMarkdownRender = errors.New("markdown rendering failed")
	ErrWriteBundle    = errors.New("failed to write bundle")

	// Option validation errors.
	ErrUnsupportedTarget = errors.New("unsupported target")
	ErrInvalidQuoteChar  = errors.New("invalid quote character")
	ErrInvalidIndent     = errors.New("invalid indent string")
	ErrUnknownEngine     = errors.New("unknown template engine")
	ErrInvalidDelimiters = errors.New("invalid template delimiters")
	ErrEmptyDestination  = errors.New("file group has no destination")
)
