// Package gitcli clones repositories by shelling out to the git binary,
// mirroring what an operator would run by hand. Authentication is whatever
// the operator's git setup provides (SSH agent, credential helper).
package gitcli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// commandRunner runs one external command in the given working directory.
type commandRunner func(ctx context.Context, dir string, name string, args ...string) error

// GitClonerRepository implements repositories.ClonerRepository with the git
// binary as a child process.
type GitClonerRepository struct {
	runner commandRunner
}

// NewGitClonerRepository creates a cloner that invokes git on PATH.
func NewGitClonerRepository() *GitClonerRepository {
	return &GitClonerRepository{runner: runCommand}
}

// Clone runs `git clone <cloneURL>` with the target directory as working
// directory and waits for it to finish.
func (it *GitClonerRepository) Clone(
	ctx context.Context,
	_ entities.Credential,
	cloneURL string,
	targetDir string,
) error {
	if err := it.runner(ctx, targetDir, "git", "clone", cloneURL); err != nil {
		return fmt.Errorf("git clone %q failed: %w", cloneURL, err)
	}
	return nil
}

func runCommand(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
