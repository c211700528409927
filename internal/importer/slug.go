package importer

import (
	"strings"
)

const maxSlugLen = 100

// GenerateSlug maps a title to a URL-safe identifier. Lowercase ASCII
// letters, digits, hiragana, katakana and CJK unified ideographs are kept;
// every other rune becomes a hyphen. Hyphen runs are collapsed, edge
// hyphens stripped, and the result is truncated to 100 runes. An empty
// title yields an empty slug; callers must handle that.
func GenerateSlug(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		if isSlugRune(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")

	runes := []rune(slug)
	if len(runes) > maxSlugLen {
		slug = string(runes[:maxSlugLen])
	}
	return slug
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x3040 && r <= 0x309F: // hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // katakana
		return true
	case r >= 0x4E00 && r <= 0x9FAF: // CJK unified ideographs
		return true
	}
	return false
}
