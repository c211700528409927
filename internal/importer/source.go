package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/content-publish-api/internal/models"
)

// ManualSourceRef is recorded as source_ref for markdown imports, which
// have no meaningful origin URL.
const ManualSourceRef = "manual-input"

var (
	// ErrBlankContent is returned for a markdown import without content
	ErrBlankContent = errors.New("markdown content is required")
	// ErrBlankURL is returned for a url import without a url
	ErrBlankURL = errors.New("url is required")
	// ErrUnknownSourceType is returned for an unrecognized import type
	ErrUnknownSourceType = errors.New("invalid import type")
)

// Source is the parsed import request: either raw markdown or a URL to
// scrape. Parsing the request into a Source once at the boundary means the
// pipeline only ever dispatches over the two valid variants.
type Source interface {
	// SourceType is the value recorded as source_type on the audit row
	SourceType() models.SourceType
	// SourceRef is the value recorded as source_ref on the audit row
	SourceRef() string
}

// MarkdownSource carries raw markdown text submitted by an author
type MarkdownSource struct {
	Content string
}

func (s MarkdownSource) SourceType() models.SourceType { return models.SourceMarkdown }
func (s MarkdownSource) SourceRef() string             { return ManualSourceRef }

// URLSource carries a remote page address to scrape
type URLSource struct {
	URL string
}

func (s URLSource) SourceType() models.SourceType { return models.SourceURL }
func (s URLSource) SourceRef() string             { return s.URL }

// ParseSource validates a raw import request and returns the matching
// Source variant. The required field for the chosen type must be non-blank.
func ParseSource(sourceType, content, url string) (Source, error) {
	switch sourceType {
	case string(models.SourceMarkdown):
		if strings.TrimSpace(content) == "" {
			return nil, ErrBlankContent
		}
		return MarkdownSource{Content: content}, nil
	case string(models.SourceURL):
		if strings.TrimSpace(url) == "" {
			return nil, ErrBlankURL
		}
		return URLSource{URL: url}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSourceType, sourceType)
	}
}
