//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock
// frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/internal/domain/repositories"
)

// SpyProviderRepository implements repositories.ProviderRepository as a
// configurable spy.
type SpyProviderRepository struct {
	// --- ListOrganizations ---
	Organizations []entities.Organization
	ListOrgsErr   error
	ListOrgsCalls int
	ListOrgsCreds []entities.Credential

	// --- ListRepositories ---
	Repositories    []entities.Repository
	ListReposErr    error
	ListReposCalls  int
	ListedEndpoints []string
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

func (s *SpyProviderRepository) ListOrganizations(
	_ context.Context,
	cred entities.Credential,
) ([]entities.Organization, error) {
	s.ListOrgsCalls++
	s.ListOrgsCreds = append(s.ListOrgsCreds, cred)
	return s.Organizations, s.ListOrgsErr
}

func (s *SpyProviderRepository) ListRepositories(
	_ context.Context,
	_ entities.Credential,
	listEndpoint string,
) ([]entities.Repository, error) {
	s.ListReposCalls++
	s.ListedEndpoints = append(s.ListedEndpoints, listEndpoint)
	return s.Repositories, s.ListReposErr
}
