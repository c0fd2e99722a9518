// Package gogit clones repositories with the embedded go-git implementation,
// for hosts without a git binary on PATH.
package gogit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// GoGitClonerRepository implements repositories.ClonerRepository in-process.
type GoGitClonerRepository struct{}

// NewGoGitClonerRepository creates the builtin cloner.
func NewGoGitClonerRepository() *GoGitClonerRepository {
	return &GoGitClonerRepository{}
}

// Clone clones the repository into targetDir under the same directory name
// the git binary would pick.
func (it *GoGitClonerRepository) Clone(
	ctx context.Context,
	cred entities.Credential,
	cloneURL string,
	targetDir string,
) error {
	var auth transport.AuthMethod
	if strings.HasPrefix(cloneURL, "http") && cred.Token != "" {
		auth = &githttp.BasicAuth{
			Username: cred.Username,
			Password: cred.Token,
		}
	}

	destination := filepath.Join(targetDir, repoDirName(cloneURL))

	_, err := gogit.PlainCloneContext(ctx, destination, false, &gogit.CloneOptions{
		URL:      cloneURL,
		Auth:     auth,
		Progress: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to clone %q: %w", cloneURL, err)
	}

	return nil
}

// repoDirName mirrors git's default checkout directory naming.
func repoDirName(cloneURL string) string {
	trimmed := strings.TrimSuffix(cloneURL, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if idx := strings.LastIndexAny(trimmed, "/:"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}
