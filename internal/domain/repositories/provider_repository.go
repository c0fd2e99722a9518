package repositories

import (
	"context"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// ProviderRepository lists the authenticated user's organizations and the
// repositories owned by one of them.
type ProviderRepository interface {
	// ListOrganizations fetches the organizations of the authenticated user.
	ListOrganizations(
		ctx context.Context,
		cred entities.Credential,
	) ([]entities.Organization, error)

	// ListRepositories fetches every repository reachable from listEndpoint,
	// following pagination until the result set is complete.
	ListRepositories(
		ctx context.Context,
		cred entities.Credential,
		listEndpoint string,
	) ([]entities.Repository, error)
}
