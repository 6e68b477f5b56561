// Package htmlmin minifies HTML template fragments.
//
// The input is first tokenized with golang.org/x/net/html to reject markup
// cut off by the end of input, which the minifier itself accepts silently.
// Minification is done by github.com/tdewolff/minify/v2/html. Option names
// follow the html-minifier conventions used by front-end build tools and
// map onto the minifier's Keep* switches.
//
// End tags and document tags are always kept: templates are fragments that
// get concatenated at runtime, so an omitted optional end tag could change
// the meaning of the surrounding markup.
package htmlmin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	nethtml "golang.org/x/net/html"
)

// ErrParse indicates the input could not be tokenized completely.
var ErrParse = errors.New("parse error")

const mediaType = "text/html"

// Options selects the transformations applied by Minify. The zero value
// only validates and copies the input.
type Options struct {
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

// minifier translates opts into the minifier's Keep* switches.
func (o Options) minifier() *html.Minifier {
	return &html.Minifier{
		KeepComments:            !o.RemoveComments,
		KeepConditionalComments: true,
		KeepDefaultAttrVals: !o.RemoveRedundantAttributes &&
			!o.RemoveScriptTypeAttributes &&
			!o.RemoveStyleLinkTypeAttributes,
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       !o.RemoveAttributeQuotes,
		KeepWhitespace:   !o.CollapseWhitespace || o.ConservativeCollapse,
	}
}

// snippetLength bounds the excerpt quoted in parse errors.
const snippetLength = 40

// Minify returns src with the selected transformations applied. It fails
// with ErrParse when a tag or comment is left open at the end of input.
func Minify(src string, opts Options) (string, error) {
	if err := Validate(src); err != nil {
		return "", err
	}
	if opts == (Options{}) {
		return src, nil
	}

	m := minify.New()
	m.Add(mediaType, opts.minifier())
	out, err := m.String(mediaType, src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return out, nil
}

// Validate tokenizes src and reports the first tag or comment left open
// at the end of input.
func Validate(src string) error {
	z := nethtml.NewTokenizer(strings.NewReader(src))
	offset := 0

	for {
		tt := z.Next()
		raw := string(z.Raw())

		switch tt {
		case nethtml.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("%w: %v", ErrParse, err)
			}
			if raw != "" {
				return parseError(src, offset, "unterminated tag")
			}
			return nil
		case nethtml.CommentToken:
			if isUnterminatedComment(raw) {
				return parseError(src, offset, "unterminated comment")
			}
		}
		offset += len(raw)
	}
}

// parseError reports the failing offset with a short excerpt of the input.
func parseError(src string, offset int, reason string) error {
	rest := src[offset:]
	if len(rest) > snippetLength {
		rest = rest[:snippetLength] + "..."
	}
	return fmt.Errorf("%w: %s at offset %d: %q", ErrParse, reason, offset, rest)
}

// isUnterminatedComment reports whether raw is a "<!--" comment cut off by
// the end of input.
func isUnterminatedComment(raw string) bool {
	if !strings.HasPrefix(raw, "<!--") {
		return false
	}
	if raw == "<!-->" || raw == "<!--->" {
		return false
	}
	return !strings.HasSuffix(raw, "-->") && !strings.HasSuffix(raw, "--!>")
}
