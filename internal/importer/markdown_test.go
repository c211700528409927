package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessMarkdown_HeadingTitle(t *testing.T) {
	result := ProcessMarkdown("# My Title\n\nBody text.")

	assert.Equal(t, "My Title", result.Title)
	assert.Equal(t, "Body text.", result.ContentMD)
	assert.Equal(t, "my-title", result.Slug)
	assert.Contains(t, result.ContentHTML, "<p>Body text.</p>")
}

func TestProcessMarkdown_NoHeading(t *testing.T) {
	result := ProcessMarkdown("Just a line\nmore text")

	assert.Equal(t, "Just a line", result.Title)
	assert.Equal(t, "more text", result.ContentMD)
	assert.Equal(t, "just-a-line", result.Slug)
}

func TestProcessMarkdown_SingleLine(t *testing.T) {
	result := ProcessMarkdown("Only one line")

	assert.Equal(t, "Only one line", result.Title)
	assert.Equal(t, "", result.ContentMD)
}

func TestProcessMarkdown_HeadingNotFirstLine(t *testing.T) {
	result := ProcessMarkdown("intro paragraph\n\n# Real Title\n\nbody here")

	assert.Equal(t, "Real Title", result.Title)
	assert.Equal(t, "body here", result.ContentMD)
}

func TestProcessMarkdown_IndentedHeading(t *testing.T) {
	// The heading marker is matched on the trimmed line
	result := ProcessMarkdown("   # Indented Title\nbody")

	assert.Equal(t, "Indented Title", result.Title)
	assert.Equal(t, "body", result.ContentMD)
}

func TestProcessMarkdown_EmptyHeadingFallsBack(t *testing.T) {
	// "# " with no text supplies no title, so the first line wins
	result := ProcessMarkdown("# \nsecond line")

	assert.Equal(t, "#", result.Title)
	assert.Equal(t, "second line", result.ContentMD)
}

func TestProcessMarkdown_DeeperHeadingsIgnored(t *testing.T) {
	result := ProcessMarkdown("## Not a title\nmore")

	assert.Equal(t, "## Not a title", result.Title)
	assert.Equal(t, "more", result.ContentMD)
}

func TestProcessMarkdown_RendersCommonmark(t *testing.T) {
	result := ProcessMarkdown("# T\n\n**bold** and *italic*\n\n- item one\n- item two\n\n[link](https://example.com)")

	assert.Contains(t, result.ContentHTML, "<strong>bold</strong>")
	assert.Contains(t, result.ContentHTML, "<em>italic</em>")
	assert.Contains(t, result.ContentHTML, "<li>item one</li>")
	assert.Contains(t, result.ContentHTML, `<a href="https://example.com">link</a>`)
}

func TestProcessMarkdown_BodyTrimmed(t *testing.T) {
	result := ProcessMarkdown("# T\n\n\n  body  \n\n")

	assert.Equal(t, "body", result.ContentMD)
}
