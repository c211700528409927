package importer

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// contentSelectors are tried in order; the first match becomes the content
// root. The document body is the final fallback.
var contentSelectors = []string{
	"article",
	`[role="main"]`,
	".content",
	".post-content",
	".entry-content",
	"main",
	".container",
}

// noiseSelectors are removed from the content root before text extraction
var noiseSelectors = []string{
	"nav", "header", "footer", "aside", ".sidebar",
	".advertisement", ".ads", ".comments", "script", "style",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FetchError reports a failed remote fetch: either a transport error or a
// non-2xx response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: HTTP %d: %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *FetchError) Unwrap() error { return e.Err }

// Extractor fetches remote pages and extracts a title and body text
type Extractor struct {
	client *resty.Client
}

// NewExtractor creates an Extractor with a bounded request timeout.
// Fetches are single-shot: no retries on failure.
func NewExtractor(timeout time.Duration) *Extractor {
	return &Extractor{
		client: resty.New().SetTimeout(timeout),
	}
}

// ExtractFromURL retrieves the page at rawURL and extracts a normalized
// article draft from it. The title comes from <title>, then the first <h1>,
// then the literal "Untitled". The body is the visible text of the first
// matching content root with noise elements removed and whitespace runs
// collapsed; no markdown structure is reconstructed, so ContentMD is plain
// text and ContentHTML is that text with newlines as <br> tags.
func (e *Extractor) ExtractFromURL(rawURL string) (*Result, error) {
	resp, err := e.client.R().Get(rawURL)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", rawURL, err)
	}

	title := doc.Find("title").First().Text()
	if title == "" {
		title = doc.Find("h1").First().Text()
		if title == "" {
			title = "Untitled"
		}
	}
	title = strings.TrimSpace(title)

	root := doc.Find("body").First()
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			root = s
			break
		}
	}

	for _, sel := range noiseSelectors {
		root.Find(sel).Remove()
	}

	text := strings.TrimSpace(whitespaceRun.ReplaceAllString(root.Text(), " "))

	return &Result{
		Title:       title,
		ContentMD:   text,
		ContentHTML: strings.ReplaceAll(text, "\n", "<br>"),
		Slug:        GenerateSlug(title),
	}, nil
}
