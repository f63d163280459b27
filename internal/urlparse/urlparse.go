// Package urlparse extracts asset identifiers from the URL shapes the
// upstream service has used over time. Asset IDs are opaque tokens made of
// letters, digits, underscores and hyphens.
package urlparse

import (
	"fmt"
	"net/url"
	"regexp"
)

// MinGenericIDLen is the minimum length of a path segment accepted by the
// generic document fallback pattern. The threshold is a tunable heuristic,
// not a semantic guarantee of the upstream ID format.
const MinGenericIDLen = 15

// The four historical URL shapes, tried in order. DirectWithToken is a
// stricter form of Direct and is checked first; the generic document
// fallback only fires when no structured pattern matched.
var (
	DirectWithTokenPattern = regexp.MustCompile(`/direct/document/([A-Za-z0-9_-]+)/[A-Za-z0-9_-]+/original`)
	DirectPattern          = regexp.MustCompile(`/direct/document/([A-Za-z0-9_-]+)`)
	BinaryPattern          = regexp.MustCompile(`/api_binary/v1/(?:advance/)?(?:image|video|document)/([A-Za-z0-9_-]+)`)
	GenericDocumentPattern = regexp.MustCompile(fmt.Sprintf(`/document/([A-Za-z0-9_-]{%d,})$`, MinGenericIDLen))
)

var patterns = []*regexp.Regexp{
	DirectWithTokenPattern,
	DirectPattern,
	BinaryPattern,
	GenericDocumentPattern,
}

// ExtractAssetID returns the asset ID embedded in rawURL, trying each known
// pattern in order and returning on first match. When nothing matches, the
// caller must not guess further: the second return is false.
func ExtractAssetID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	p := u.Path
	if p == "" {
		p = rawURL
	}

	for _, re := range patterns {
		if m := re.FindStringSubmatch(p); m != nil {
			return m[1], true
		}
	}
	return "", false
}
