//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/orgexport/internal/domain/commands"
	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/test/domain/promptdoubles"
	doubles "github.com/rios0rios0/orgexport/test/infrastructure/repositorydoubles"
)

func acmeOrg() entities.Organization {
	return entities.Organization{
		Login:       "acme",
		ReposURL:    "https://api.example.com/orgs/acme/repos",
		Description: "d",
	}
}

func fourRepos() []entities.Repository {
	return []entities.Repository{
		{Name: "alpha", SSHURL: "git@example.com:acme/alpha.git"},
		{Name: "beta", SSHURL: "git@example.com:acme/beta.git"},
		{Name: "gamma", SSHURL: "git@example.com:acme/gamma.git"},
		{Name: "delta", SSHURL: "git@example.com:acme/delta.git"},
	}
}

func TestExportCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should clone every repository of the chosen organization in order", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &doubles.SpyProviderRepository{
			Organizations: []entities.Organization{acmeOrg()},
			Repositories:  fourRepos(),
		}
		cloner := &doubles.SpyClonerRepository{}
		prompter := &promptdoubles.StubPrompter{
			Cred:        entities.Credential{Username: "octocat", Token: "secret"},
			Dir:         filepath.Join(t.TempDir(), "export"),
			ChooseIndex: 0,
			ChooseOK:    true,
		}

		cmd := commands.NewExportCommand(provider, cloner, prompter)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ExportOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"https://api.example.com/orgs/acme/repos"}, provider.ListedEndpoints)
		assert.Equal(t, []string{
			"git@example.com:acme/alpha.git",
			"git@example.com:acme/beta.git",
			"git@example.com:acme/gamma.git",
			"git@example.com:acme/delta.git",
		}, cloner.ClonedURLs)
	})

	t.Run("should exit cleanly without cloning when the menu is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &doubles.SpyProviderRepository{
			Organizations: []entities.Organization{acmeOrg()},
			Repositories:  fourRepos(),
		}
		cloner := &doubles.SpyClonerRepository{}
		prompter := &promptdoubles.StubPrompter{
			Cred:     entities.Credential{Username: "octocat", Token: "secret"},
			ChooseOK: false,
		}

		cmd := commands.NewExportCommand(provider, cloner, prompter)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ExportOptions{})

		// then
		require.NoError(t, err)
		assert.Zero(t, provider.ListReposCalls)
		assert.Zero(t, prompter.DirCalls)
		assert.Empty(t, cloner.ClonedURLs)
	})

	t.Run("should keep cloning the remaining repositories after a single failure", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &doubles.SpyProviderRepository{
			Organizations: []entities.Organization{acmeOrg()},
			Repositories:  fourRepos(),
		}
		cloner := &doubles.SpyClonerRepository{
			FailOn: map[string]error{
				"git@example.com:acme/beta.git": errors.New("exit status 128"),
			},
		}
		prompter := &promptdoubles.StubPrompter{
			Cred:     entities.Credential{Username: "octocat", Token: "secret"},
			Dir:      filepath.Join(t.TempDir(), "export"),
			ChooseOK: true,
		}

		cmd := commands.NewExportCommand(provider, cloner, prompter)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ExportOptions{})

		// then
		require.NoError(t, err)
		assert.Len(t, cloner.ClonedURLs, 4)
	})

	t.Run("should propagate a repository listing failure without cloning", func(t *testing.T) {
		t.Parallel()

		// given
		listErr := errors.New("failed to list repositories: bad pagination metadata")
		provider := &doubles.SpyProviderRepository{
			Organizations: []entities.Organization{acmeOrg()},
			ListReposErr:  listErr,
		}
		cloner := &doubles.SpyClonerRepository{}
		prompter := &promptdoubles.StubPrompter{
			Cred:     entities.Credential{Username: "octocat", Token: "secret"},
			Dir:      filepath.Join(t.TempDir(), "export"),
			ChooseOK: true,
		}

		cmd := commands.NewExportCommand(provider, cloner, prompter)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ExportOptions{})

		// then
		require.ErrorIs(t, err, listErr)
		assert.Empty(t, cloner.ClonedURLs)
	})

	t.Run("should skip the credential prompt when a token is given", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &doubles.SpyProviderRepository{
			Organizations: []entities.Organization{acmeOrg()},
			Repositories:  fourRepos(),
		}
		cloner := &doubles.SpyClonerRepository{}
		prompter := &promptdoubles.StubPrompter{ChooseOK: true}

		cmd := commands.NewExportCommand(provider, cloner, prompter)
		opts := commands.ExportOptions{
			Username: "octocat",
			Token:    "ghp_flag",
			Dir:      filepath.Join(t.TempDir(), "export"),
		}

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), opts)

		// then
		require.NoError(t, err)
		assert.Zero(t, prompter.CredCalls)
		require.Len(t, provider.ListOrgsCreds, 1)
		assert.Equal(t, "ghp_flag", provider.ListOrgsCreds[0].Token)
	})

	t.Run("should do nothing when the user has no organizations", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &doubles.SpyProviderRepository{}
		cloner := &doubles.SpyClonerRepository{}
		prompter := &promptdoubles.StubPrompter{
			Cred: entities.Credential{Username: "octocat", Token: "secret"},
		}

		cmd := commands.NewExportCommand(provider, cloner, prompter)

		// when
		err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.ExportOptions{})

		// then
		require.NoError(t, err)
		assert.Zero(t, prompter.ChooseCalls)
		assert.Empty(t, cloner.ClonedURLs)
	})

	t.Run("should prefer the HTTPS clone URL when configured", func(t *testing.T) {
		t.Parallel()

		// given
		provider := &doubles.SpyProviderRepository{
			Organizations: []entities.Organization{acmeOrg()},
			Repositories: []entities.Repository{{
				Name:     "alpha",
				SSHURL:   "git@example.com:acme/alpha.git",
				CloneURL: "https://example.com/acme/alpha.git",
			}},
		}
		cloner := &doubles.SpyClonerRepository{}
		prompter := &promptdoubles.StubPrompter{
			Cred:     entities.Credential{Username: "octocat", Token: "secret"},
			Dir:      filepath.Join(t.TempDir(), "export"),
			ChooseOK: true,
		}

		settings := entities.DefaultSettings()
		settings.Clone.Protocol = entities.CloneProtocolHTTPS

		cmd := commands.NewExportCommand(provider, cloner, prompter)

		// when
		err := cmd.Execute(context.Background(), settings, commands.ExportOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/acme/alpha.git"}, cloner.ClonedURLs)
	})
}
