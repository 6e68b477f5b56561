package config

import (
	"errors"
	"fmt"
)

// Process is the process option: false, true, or a mapping that enables
// template processing with the given settings.
type Process struct {
	Enabled    bool
	Engine     string         // "pongo2" (default) or "go"
	Data       map[string]any // Template context
	Delimiters []string       // go engine only: [left, right]
}

type processBody struct {
	Enabled    *bool          `yaml:"enabled"`
	Engine     string         `yaml:"engine"`
	Data       map[string]any `yaml:"data"`
	Delimiters []string       `yaml:"delimiters"`
}

// UnmarshalYAML accepts a boolean or a mapping. A mapping enables
// processing unless it sets enabled: false.
func (p *Process) UnmarshalYAML(unmarshal func(any) error) error {
	var enabled bool
	if err := unmarshal(&enabled); err == nil {
		*p = Process{Enabled: enabled}
		return nil
	}

	var body processBody
	if err := unmarshal(&body); err != nil {
		return fmt.Errorf("process: must be a boolean or a mapping: %w", err)
	}
	*p = Process{
		Enabled:    body.Enabled == nil || *body.Enabled,
		Engine:     body.Engine,
		Data:       body.Data,
		Delimiters: body.Delimiters,
	}
	return nil
}

// MarshalYAML writes false when disabled and a mapping otherwise.
func (p Process) MarshalYAML() (any, error) {
	if !p.Enabled {
		return false, nil
	}
	enabled := true
	return processBody{
		Enabled:    &enabled,
		Engine:     p.Engine,
		Data:       p.Data,
		Delimiters: p.Delimiters,
	}, nil
}

// StringList accepts either a single string or a sequence of strings.
type StringList []string

var errStringList = errors.New("must be a string or a list of strings")

// UnmarshalYAML decodes a scalar string into a one-element list.
func (l *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return errStringList
	}
	*l = many
	return nil
}
