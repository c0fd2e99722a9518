package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

const (
	userAgent = "orgexport"
	relNext   = "next"
)

var (
	// ErrHTTPStatus reports a non-success HTTP status from the API.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	// ErrBadPagination reports a Link header that could not be parsed. The
	// fetch aborts rather than returning a silently truncated result set.
	ErrBadPagination = errors.New("bad pagination metadata")
	// ErrBadPayload reports a response body that could not be decoded.
	ErrBadPayload = errors.New("bad response payload")
)

// pageDecoder converts one response body into a page of typed items.
type pageDecoder[T any] func(body []byte) ([]T, error)

// fetchAll walks a paginated endpoint by following the Link header's "next"
// relation, collecting every page's items in arrival order. Requests are
// strictly sequential, one at a time, and no page is fetched twice under
// well-formed metadata. A missing Link header and one without a "next"
// relation are the same terminal condition. Cursor cycles served by a
// misbehaving server are not detected; the server's pagination metadata is
// trusted.
func fetchAll[T any](
	ctx context.Context,
	client *http.Client,
	cred entities.Credential,
	startURL string,
	params url.Values,
	decode pageDecoder[T],
) ([]T, error) {
	currentURL, err := mergeQuery(startURL, params)
	if err != nil {
		return nil, err
	}

	var all []T
	for {
		logger.Infof("Fetching %s", currentURL)

		body, rawLink, fetchErr := fetchPage(ctx, client, cred, currentURL)
		if fetchErr != nil {
			return nil, fetchErr
		}

		hasMore := false
		if rawLink != "" {
			link, parseErr := parseLinkHeader(rawLink)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadPagination, parseErr)
			}
			if next := link.findRel(relNext); next != nil {
				currentURL = next.url
				hasMore = true
			}
		}

		page, decodeErr := decode(body)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadPayload, decodeErr)
		}
		all = append(all, page...)

		if !hasMore {
			return all, nil
		}
	}
}

// fetchPage issues one authenticated GET and returns the response body and
// the raw Link header value ("" when absent).
func fetchPage(
	ctx context.Context,
	client *http.Client,
	cred entities.Credential,
	rawURL string,
) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request for %q: %w", rawURL, err)
	}
	req.SetBasicAuth(cred.Username, cred.Token)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request to %q failed: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", fmt.Errorf("%w: %s from %q", ErrHTTPStatus, resp.Status, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response from %q: %w", rawURL, err)
	}

	return body, resp.Header.Get("Link"), nil
}

// mergeQuery merges params into rawURL's query string. Parameters already
// present on rawURL are preserved unless overridden by params.
func mergeQuery(rawURL string, params url.Values) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	query := parsed.Query()
	for key, values := range params {
		query[key] = values
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
