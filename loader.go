package html2js

import (
	"fmt"

	"github.com/alnah/go-html2js/internal/pipeline"
)

// loadContent reads the source at path and returns it escaped, after the
// optional transformation, Markdown rendering and minification.
func (c *Compiler) loadContent(path string) (string, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrReadTemplate, path, err)
	}
	content := string(data)

	if c.transform != nil {
		content, err = c.transform(content, path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrProcess, path, err)
		}
	}

	if c.markdown != nil && pipeline.IsMarkdown(path) {
		content, err = c.markdown.ToHTML(content)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMarkdownRender, path, err)
		}
	}

	if c.opts.HTMLMin != nil {
		content, err = c.opts.HTMLMin.minify(path, content)
		if err != nil {
			return "", err
		}
	}

	return EscapeContent(content, c.policy), nil
}
