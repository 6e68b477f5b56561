package html2js

import (
	"fmt"
	"sort"

	"github.com/alnah/go-html2js/internal/htmlmin"
)

// HTMLMinOptions selects minifier transformations. Field names follow the
// html-minifier option keys accepted by ParseHTMLMinOptions.
type HTMLMinOptions struct {
	RemoveComments                bool
	CollapseWhitespace            bool
	ConservativeCollapse          bool
	CollapseBooleanAttributes     bool
	RemoveAttributeQuotes         bool
	RemoveEmptyAttributes         bool
	RemoveRedundantAttributes     bool
	RemoveScriptTypeAttributes    bool
	RemoveStyleLinkTypeAttributes bool
}

var htmlMinSetters = map[string]func(*HTMLMinOptions, bool){
	"removeComments":                func(o *HTMLMinOptions, v bool) { o.RemoveComments = v },
	"collapseWhitespace":            func(o *HTMLMinOptions, v bool) { o.CollapseWhitespace = v },
	"conservativeCollapse":          func(o *HTMLMinOptions, v bool) { o.ConservativeCollapse = v },
	"collapseBooleanAttributes":     func(o *HTMLMinOptions, v bool) { o.CollapseBooleanAttributes = v },
	"removeAttributeQuotes":         func(o *HTMLMinOptions, v bool) { o.RemoveAttributeQuotes = v },
	"removeEmptyAttributes":         func(o *HTMLMinOptions, v bool) { o.RemoveEmptyAttributes = v },
	"removeRedundantAttributes":     func(o *HTMLMinOptions, v bool) { o.RemoveRedundantAttributes = v },
	"removeScriptTypeAttributes":    func(o *HTMLMinOptions, v bool) { o.RemoveScriptTypeAttributes = v },
	"removeStyleLinkTypeAttributes": func(o *HTMLMinOptions, v bool) { o.RemoveStyleLinkTypeAttributes = v },
}

// HTMLMinKeys lists the option keys ParseHTMLMinOptions accepts, sorted.
func HTMLMinKeys() []string {
	keys := make([]string, 0, len(htmlMinSetters))
	for k := range htmlMinSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseHTMLMinOptions converts an htmlmin configuration map. An empty map
// disables minification and yields nil. A non-empty map yields options
// even when every value is false: the source is then still parsed, so
// malformed markup is reported.
//
// Keys outside HTMLMinKeys are ignored, as html-minifier ignores them, and
// returned sorted so callers can report them.
func ParseHTMLMinOptions(cfg map[string]bool) (opts *HTMLMinOptions, ignored []string) {
	if len(cfg) == 0 {
		return nil, nil
	}

	opts = &HTMLMinOptions{}
	for key, value := range cfg {
		set, ok := htmlMinSetters[key]
		if !ok {
			ignored = append(ignored, key)
			continue
		}
		set(opts, value)
	}
	sort.Strings(ignored)
	return opts, ignored
}

func (o *HTMLMinOptions) internal() htmlmin.Options {
	return htmlmin.Options{
		RemoveComments:                o.RemoveComments,
		CollapseWhitespace:            o.CollapseWhitespace,
		ConservativeCollapse:          o.ConservativeCollapse,
		CollapseBooleanAttributes:     o.CollapseBooleanAttributes,
		RemoveAttributeQuotes:         o.RemoveAttributeQuotes,
		RemoveEmptyAttributes:         o.RemoveEmptyAttributes,
		RemoveRedundantAttributes:     o.RemoveRedundantAttributes,
		RemoveScriptTypeAttributes:    o.RemoveScriptTypeAttributes,
		RemoveStyleLinkTypeAttributes: o.RemoveStyleLinkTypeAttributes,
	}
}

// minify runs content through the minifier. Failures name the source path.
func (o *HTMLMinOptions) minify(path, content string) (string, error) {
	out, err := htmlmin.Minify(content, o.internal())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMinification, path, err)
	}
	return out, nil
}
