package html2js

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Escape policy defaults.
const (
	DefaultQuoteChar = `"`
	DefaultIndent    = "  "
)

// EscapePolicy controls how template content is turned into string literals.
type EscapePolicy struct {
	QuoteChar string // single character delimiting generated literals
	Indent    string // whitespace unit for generated indentation
}

// DefaultEscapePolicy returns double quotes and two-space indentation.
func DefaultEscapePolicy() EscapePolicy {
	return EscapePolicy{QuoteChar: DefaultQuoteChar, Indent: DefaultIndent}
}

// Validate checks that the quote character can delimit a literal and be
// escaped, and that the indent is whitespace only.
func (p EscapePolicy) Validate() error {
	if utf8.RuneCountInString(p.QuoteChar) != 1 {
		return fmt.Errorf("%w: %q (must be a single character)", ErrInvalidQuoteChar, p.QuoteChar)
	}
	switch p.QuoteChar {
	case `\`, "\n", "\r":
		return fmt.Errorf("%w: %q", ErrInvalidQuoteChar, p.QuoteChar)
	}
	for _, r := range p.Indent {
		if !unicode.IsSpace(r) || r == '\n' || r == '\r' {
			return fmt.Errorf("%w: %q (must contain only spaces or tabs)", ErrInvalidIndent, p.Indent)
		}
	}
	return nil
}

// lineBreak returns what replaces each line break: the literal ends with
// an escaped newline, the source breaks, and a new literal is concatenated.
func (p EscapePolicy) lineBreak() string {
	q := p.QuoteChar
	return `\n` + q + " +\n" + p.Indent + p.Indent + q
}

// EscapeContent makes content safe to embed between two quote characters.
// Backslashes are doubled, quotes are escaped, and line breaks (LF or CRLF)
// are split into concatenated literals. All three happen in one pass, so the
// backslashes and quotes introduced by the line-break replacement are never
// escaped again.
func EscapeContent(content string, policy EscapePolicy) string {
	if content == "" {
		return ""
	}
	nl := policy.lineBreak()
	r := strings.NewReplacer(
		`\`, `\\`,
		policy.QuoteChar, `\`+policy.QuoteChar,
		"\r\n", nl,
		"\n", nl,
	)
	return r.Replace(content)
}
