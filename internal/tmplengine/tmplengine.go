// Package tmplengine renders template sources before they are escaped.
// Two engines are available: pongo2 (Django syntax, the default) and Go's
// text/template with configurable delimiters.
package tmplengine

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/flosch/pongo2/v6"
)

// Engine names.
const (
	Pongo2Name     = "pongo2"
	GoTemplateName = "go"
)

// Sentinel errors for template rendering.
var (
	ErrUnknownEngine     = errors.New("unknown template engine")
	ErrInvalidDelimiters = errors.New("invalid delimiters")
	ErrParse             = errors.New("template parse failed")
	ErrExecute           = errors.New("template execution failed")
)

// Engine renders template content with data. The name identifies the
// source in error messages.
type Engine interface {
	Render(name, content string, data map[string]any) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ Engine = (*Pongo2)(nil)
	_ Engine = (*GoTemplate)(nil)
)

// New returns the engine registered under name. An empty name selects
// pongo2. Delimiters only apply to the go engine; nil keeps {{ and }}.
func New(name string, delims []string) (Engine, error) {
	switch strings.ToLower(name) {
	case "", Pongo2Name:
		if len(delims) > 0 {
			return nil, fmt.Errorf("%w: %s does not support custom delimiters", ErrInvalidDelimiters, Pongo2Name)
		}
		return NewPongo2(), nil
	case GoTemplateName:
		return NewGoTemplate(delims)
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownEngine, name, Pongo2Name, GoTemplateName)
	}
}

// Pongo2 renders Django-style templates.
type Pongo2 struct {
	set *pongo2.TemplateSet
}

// NewPongo2 creates a pongo2 engine whose includes resolve relative to the
// working directory.
func NewPongo2() *Pongo2 {
	return &Pongo2{set: pongo2.NewSet("html2js", pongo2.MustNewLocalFileSystemLoader(""))}
}

// Render parses content and executes it with data as the context.
func (e *Pongo2) Render(name, content string, data map[string]any) (string, error) {
	tpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExecute, name, err)
	}
	return buf.String(), nil
}

// GoTemplate renders text/template sources.
type GoTemplate struct {
	left, right string
}

// NewGoTemplate creates a text/template engine. delims must be empty or
// hold exactly two non-empty strings.
func NewGoTemplate(delims []string) (*GoTemplate, error) {
	switch len(delims) {
	case 0:
		return &GoTemplate{}, nil
	case 2:
		if delims[0] == "" || delims[1] == "" {
			return nil, fmt.Errorf("%w: delimiters cannot be empty", ErrInvalidDelimiters)
		}
		return &GoTemplate{left: delims[0], right: delims[1]}, nil
	default:
		return nil, fmt.Errorf("%w: want 2 delimiters, got %d", ErrInvalidDelimiters, len(delims))
	}
}

// Render parses content and executes it with data as dot. Referencing a
// key absent from data is an error.
func (e *GoTemplate) Render(name, content string, data map[string]any) (string, error) {
	tpl, err := template.New(name).
		Delims(e.left, e.right).
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecute, err)
	}
	return buf.String(), nil
}
