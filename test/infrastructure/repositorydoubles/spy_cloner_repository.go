//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/internal/domain/repositories"
)

// SpyClonerRepository implements repositories.ClonerRepository as a
// configurable spy. FailOn maps clone URLs to the error their clone returns.
type SpyClonerRepository struct {
	ClonedURLs []string
	TargetDirs []string
	FailOn     map[string]error
}

var _ repositories.ClonerRepository = (*SpyClonerRepository)(nil)

func (s *SpyClonerRepository) Clone(
	_ context.Context,
	_ entities.Credential,
	cloneURL string,
	targetDir string,
) error {
	s.ClonedURLs = append(s.ClonedURLs, cloneURL)
	s.TargetDirs = append(s.TargetDirs, targetDir)
	return s.FailOn[cloneURL]
}
