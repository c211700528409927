package importer

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// Result is the normalized output of either import mode
type Result struct {
	Title       string `json:"title"`
	ContentMD   string `json:"content_md"`
	ContentHTML string `json:"content_html"`
	Slug        string `json:"slug"`
}

// ProcessMarkdown parses raw markdown into a normalized article draft.
// The first line whose trimmed form starts with "# " supplies the title and
// everything after it becomes the body; without such a heading the first
// line is the title and the rest is the body. Total for any non-empty
// input; callers validate non-blank content before calling.
func ProcessMarkdown(markdown string) *Result {
	lines := strings.Split(markdown, "\n")

	title := ""
	content := lines
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			title = strings.TrimSpace(trimmed[2:])
			content = lines[i+1:]
			break
		}
	}

	// No usable heading title: fall back to the first line
	if title == "" && len(lines) > 0 {
		title = strings.TrimSpace(lines[0])
		content = lines[1:]
	}

	contentMD := strings.TrimSpace(strings.Join(content, "\n"))

	return &Result{
		Title:       title,
		ContentMD:   contentMD,
		ContentHTML: renderMarkdown(contentMD),
		Slug:        GenerateSlug(title),
	}
}

// renderMarkdown converts markdown text to HTML using goldmark, falling
// back to the escaped source if conversion fails.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return html.EscapeString(md)
	}
	return buf.String()
}
