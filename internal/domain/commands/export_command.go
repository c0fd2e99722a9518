package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/internal/domain/repositories"
)

// Export is the interface for the export command.
type Export interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ExportOptions) error
}

// ExportOptions holds runtime options for a single export run.
type ExportOptions struct {
	Username string // If set together with Token, skips the credential prompt
	Token    string // If set, skips the credential prompt (CLI override)
	Dir      string // If set, skips the directory prompt (CLI override)
	Verbose  bool
}

// ExportCommand orchestrates the full export flow:
// authenticate -> pick an organization -> fetch its repositories -> clone
// each one into the target directory.
type ExportCommand struct {
	provider repositories.ProviderRepository
	cloner   repositories.ClonerRepository
	prompter repositories.Prompter
}

// NewExportCommand creates a new ExportCommand with its collaborators.
func NewExportCommand(
	provider repositories.ProviderRepository,
	cloner repositories.ClonerRepository,
	prompter repositories.Prompter,
) *ExportCommand {
	return &ExportCommand{
		provider: provider,
		cloner:   cloner,
		prompter: prompter,
	}
}

// Execute runs the export. Fetch and parse failures abort the run; a failed
// clone only skips that repository. Cancelling the organization menu is a
// clean exit, not an error.
func (it *ExportCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ExportOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cred, err := it.credential(opts)
	if err != nil {
		return err
	}

	orgs, err := it.provider.ListOrganizations(ctx, cred)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		logger.Info("No organizations found for this user")
		return nil
	}

	items := make([]entities.MenuItem, len(orgs))
	for i := range orgs {
		items[i] = orgs[i]
	}

	index, chosen := it.prompter.Choose("Choose a GitHub organization", items)
	if !chosen {
		logger.Info("No organization selected, nothing to do")
		return nil
	}
	org := orgs[index]
	logger.Debugf("Selected organization %q (%s)", org.Login, org.Description)

	targetDir, err := it.targetDirectory(opts)
	if err != nil {
		return err
	}

	repos, err := it.provider.ListRepositories(ctx, cred, org.ReposURL)
	if err != nil {
		return err
	}
	logger.Infof("Found %d repositories in %q", len(repos), org.Login)

	failures := 0
	for _, repo := range repos {
		cloneURL := repo.URLFor(settings.Clone.Protocol)
		logger.Infof("Cloning %s", repo.Name)

		if cloneErr := it.cloner.Clone(ctx, cred, cloneURL, targetDir); cloneErr != nil {
			logger.Errorf("Failed to clone %q: %v", repo.Name, cloneErr)
			failures++
		}
	}

	logger.Infof(
		"Export complete: %d repositories, %d failures",
		len(repos), failures,
	)
	return nil
}

// credential returns the CLI-provided credential when a token was given,
// otherwise prompts for both parts.
func (it *ExportCommand) credential(opts ExportOptions) (entities.Credential, error) {
	if opts.Token != "" {
		return entities.Credential{Username: opts.Username, Token: opts.Token}, nil
	}

	cred, err := it.prompter.Credentials()
	if err != nil {
		return entities.Credential{}, fmt.Errorf("failed to acquire credentials: %w", err)
	}
	return cred, nil
}

// targetDirectory uses the CLI-provided directory when given, otherwise
// prompts for one. The flag path cannot re-prompt, so an existing non-empty
// directory is an error there.
func (it *ExportCommand) targetDirectory(opts ExportOptions) (string, error) {
	if opts.Dir == "" {
		dir, err := it.prompter.TargetDirectory()
		if err != nil {
			return "", fmt.Errorf("failed to acquire target directory: %w", err)
		}
		return dir, nil
	}

	entries, err := os.ReadDir(opts.Dir)
	if err == nil && len(entries) > 0 {
		return "", fmt.Errorf("directory %q already exists and is not empty", opts.Dir)
	}
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to inspect directory %q: %w", opts.Dir, err)
	}

	if mkdirErr := os.MkdirAll(opts.Dir, 0o755); mkdirErr != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", opts.Dir, mkdirErr)
	}
	return opts.Dir, nil
}
