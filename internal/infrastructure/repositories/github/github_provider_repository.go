package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/internal/domain/repositories"
)

// GitHubProviderRepository implements repositories.ProviderRepository against
// the GitHub REST API, following Link-header pagination by hand.
type GitHubProviderRepository struct {
	client  *http.Client
	baseURL string
	perPage int
}

// NewGitHubProviderRepository creates a provider bound to the configured API
// base URL and page size. Credentials are passed per call, not stored.
func NewGitHubProviderRepository(settings *entities.Settings) repositories.ProviderRepository {
	return &GitHubProviderRepository{
		client:  &http.Client{},
		baseURL: settings.API.BaseURL,
		perPage: settings.API.PerPage,
	}
}

// ListOrganizations fetches the organizations of the authenticated user.
// The endpoint is a single page in practice, but any Link header the server
// does send is still honored.
func (it *GitHubProviderRepository) ListOrganizations(
	ctx context.Context,
	cred entities.Credential,
) ([]entities.Organization, error) {
	orgs, err := fetchAll(
		ctx, it.client, cred,
		it.baseURL+"/user/orgs", nil,
		decodePage[entities.Organization],
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// ListRepositories fetches every repository of an organization, requesting
// large pages and following the "next" relation until the set is complete.
func (it *GitHubProviderRepository) ListRepositories(
	ctx context.Context,
	cred entities.Credential,
	listEndpoint string,
) ([]entities.Repository, error) {
	params := url.Values{"per_page": []string{strconv.Itoa(it.perPage)}}

	repos, err := fetchAll(
		ctx, it.client, cred,
		listEndpoint, params,
		decodePage[entities.Repository],
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	return repos, nil
}

// decodePage decodes one JSON array page into typed items.
func decodePage[T any](body []byte) ([]T, error) {
	var page []T
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return page, nil
}
