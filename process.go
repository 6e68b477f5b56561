package html2js

import (
	"errors"
	"fmt"

	"github.com/alnah/go-html2js/internal/tmplengine"
)

// Template engine names accepted in TemplateConfig.Engine.
const (
	EnginePongo2 = tmplengine.Pongo2Name
	EngineGo     = tmplengine.GoTemplateName
)

// TransformFunc rewrites a template source before minification.
// It receives the raw content and the source path.
type TransformFunc func(content, path string) (string, error)

// TemplateConfig configures the template-substitution pass.
type TemplateConfig struct {
	Engine     string         // EnginePongo2 (default) or EngineGo
	Data       map[string]any // Context passed to every template
	Delimiters []string       // EngineGo only: [left, right]; nil keeps {{ }}
}

type processKind int

const (
	processDisabled processKind = iota
	processTemplate
	processCustom
)

// Process selects what happens to template sources before they are
// minified. Build one with ProcessDisabled, ProcessTemplate or
// ProcessCustom. The zero value is disabled.
type Process struct {
	kind     processKind
	template TemplateConfig
	custom   TransformFunc
}

// ProcessDisabled leaves sources untouched.
func ProcessDisabled() Process {
	return Process{kind: processDisabled}
}

// ProcessTemplate runs every source through a template engine.
// An empty TemplateConfig selects pongo2 with no data.
func ProcessTemplate(cfg TemplateConfig) Process {
	return Process{kind: processTemplate, template: cfg}
}

// ProcessCustom runs every source through fn. A nil fn is disabled.
func ProcessCustom(fn TransformFunc) Process {
	if fn == nil {
		return ProcessDisabled()
	}
	return Process{kind: processCustom, custom: fn}
}

// Enabled reports whether sources are transformed.
func (p Process) Enabled() bool {
	return p.kind != processDisabled
}

// String returns the variant name.
func (p Process) String() string {
	switch p.kind {
	case processTemplate:
		engine := p.template.Engine
		if engine == "" {
			engine = EnginePongo2
		}
		return "template(" + engine + ")"
	case processCustom:
		return "custom"
	default:
		return "disabled"
	}
}

// resolve turns the variant into a single transformation. It returns nil
// when processing is disabled. Engine errors are reported here so an
// invalid configuration fails before any file is read.
func (p Process) resolve() (TransformFunc, error) {
	switch p.kind {
	case processCustom:
		return p.custom, nil
	case processTemplate:
		engine, err := tmplengine.New(p.template.Engine, p.template.Delimiters)
		if err != nil {
			return nil, translateEngineError(err)
		}
		data := p.template.Data
		return func(content, path string) (string, error) {
			return engine.Render(path, content, data)
		}, nil
	default:
		return nil, nil
	}
}

func translateEngineError(err error) error {
	switch {
	case errors.Is(err, tmplengine.ErrUnknownEngine):
		return fmt.Errorf("%w: %v", ErrUnknownEngine, err)
	case errors.Is(err, tmplengine.ErrInvalidDelimiters):
		return fmt.Errorf("%w: %v", ErrInvalidDelimiters, err)
	default:
		return err
	}
}

// Engines lists the template engine names in sorted order.
func Engines() []string {
	return []string{EngineGo, EnginePongo2}
}
