// Package pipeline renders Markdown template sources to HTML fragments.
//
// Fragments are not wrapped in a document: the output is meant to be
// embedded as a template, so it has no doctype, head or body. Fenced code
// blocks are highlighted with CSS classes that the application's own
// stylesheet controls.
package pipeline
