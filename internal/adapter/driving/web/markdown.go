package web

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// renderDocument loads docs/<name>.md and returns its title (the first
// level-one heading) and sanitized HTML.
func renderDocument(name string) (string, string, error) {
	src, err := fs.ReadFile(docsFS, "docs/"+name+".md")
	if err != nil {
		return "", "", fmt.Errorf("read document %s: %w", name, err)
	}

	title := name
	for _, line := range strings.Split(string(src), "\n") {
		if heading, ok := strings.CutPrefix(line, "# "); ok {
			title = strings.TrimSpace(heading)
			break
		}
	}

	return title, RenderMarkdown(string(src)), nil
}
