package repositories

import (
	"context"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// ClonerRepository clones a single repository into the target directory.
// A failed clone only fails that repository, never the whole export.
type ClonerRepository interface {
	Clone(
		ctx context.Context,
		cred entities.Credential,
		cloneURL string,
		targetDir string,
	) error
}
