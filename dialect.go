package html2js

import (
	"fmt"
	"sort"
	"strings"
)

// Target names accepted by LookupDialect.
const (
	TargetJS     = "js"
	TargetCoffee = "coffee"
)

// Dialect describes one output language: the namespace fragments assign
// into and the wrapper that turns joined fragments into a module.
type Dialect struct {
	Name      string
	Namespace string
	wrap      func(body, strict string, policy EscapePolicy) string
}

// DialectJS wraps fragments in an immediately invoked JavaScript function.
var DialectJS = &Dialect{
	Name:      TargetJS,
	Namespace: "exports",
	wrap: func(body, strict string, p EscapePolicy) string {
		return ";(function (exports, undefined) {\n" + strict + p.Indent + body + "\n})(this);"
	},
}

// DialectCoffee wraps fragments in a CoffeeScript function invoked with this.
var DialectCoffee = &Dialect{
	Name:      TargetCoffee,
	Namespace: "_exports",
	wrap: func(body, strict string, p EscapePolicy) string {
		return "((_exports, _undefined) -> \n" + strict + p.Indent + body + "\n" + p.Indent + "return;\n)(this);"
	},
}

var dialects = map[string]*Dialect{
	TargetJS:     DialectJS,
	TargetCoffee: DialectCoffee,
}

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (*Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (must be one of %s)", ErrUnsupportedTarget, name, strings.Join(Targets(), ", "))
	}
	return d, nil
}

// Targets lists the supported target names in sorted order.
func Targets() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fragment renders the statement registering escaped content under path.
// The path is escaped with the same policy so it stays a valid literal.
func (d *Dialect) Fragment(path, escaped string, policy EscapePolicy) string {
	q := policy.QuoteChar
	key := EscapeContent(path, policy)
	return d.Namespace + ".templates[" + q + key + q + "] = " + q + escaped + q + ";"
}

// Wrap joins fragments with a newline plus one indent and wraps them in the
// dialect's module pattern, optionally led by a strict-mode directive.
func (d *Dialect) Wrap(fragments []string, useStrict bool, policy EscapePolicy) string {
	strict := ""
	if useStrict {
		strict = policy.Indent + policy.QuoteChar + "use strict" + policy.QuoteChar + ";\n"
	}
	body := strings.Join(fragments, "\n"+policy.Indent)
	return d.wrap(body, strict, policy)
}
