package github

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrMalformedLink reports a Link header item without an
	// angle-bracketed URL.
	ErrMalformedLink = errors.New("malformed link in Link header")
	// ErrMissingRelation reports a Link header item without a rel attribute.
	ErrMissingRelation = errors.New("missing rel attribute in Link header")
)

var (
	linkURLPattern = regexp.MustCompile(`<(.+)>`)
	linkRelPattern = regexp.MustCompile(`rel="?([^"]+)"?`)
)

// linkItem is one entry of an RFC 5988 Link header.
type linkItem struct {
	url string
	rel string
}

// linkHeader is a fully parsed Link header. A header is either parsed
// completely or rejected; no partial headers are ever produced.
type linkHeader struct {
	items []linkItem
}

// parseLinkHeader parses the raw value of a Link response header.
func parseLinkHeader(raw string) (*linkHeader, error) {
	parts := strings.Split(raw, ",")

	items := make([]linkItem, 0, len(parts))
	for _, part := range parts {
		item, err := parseLinkItem(part)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &linkHeader{items: items}, nil
}

// parseLinkItem parses one comma-separated entry: an angle-bracketed URL
// followed by semicolon-separated attributes, of which the first rel match
// determines the relation.
func parseLinkItem(raw string) (linkItem, error) {
	components := strings.Split(raw, ";")

	itemURL := onlyCapture(linkURLPattern, components[0])
	if itemURL == "" {
		return linkItem{}, fmt.Errorf("%w: %q", ErrMalformedLink, strings.TrimSpace(raw))
	}

	for _, component := range components[1:] {
		if rel := onlyCapture(linkRelPattern, component); rel != "" {
			return linkItem{url: itemURL, rel: rel}, nil
		}
	}

	return linkItem{}, fmt.Errorf("%w: %q", ErrMissingRelation, strings.TrimSpace(raw))
}

// onlyCapture returns the first capture group of the first match, or "".
func onlyCapture(pattern *regexp.Regexp, value string) string {
	matches := pattern.FindStringSubmatch(value)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

// findRel returns the first item carrying the given relation, or nil when
// the header has none. Relations are not guaranteed unique; first match wins.
func (h *linkHeader) findRel(rel string) *linkItem {
	for i := range h.items {
		if h.items[i].rel == rel {
			return &h.items[i]
		}
	}
	return nil
}
