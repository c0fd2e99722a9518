package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/orgexport/internal/domain/entities"
	domainRepos "github.com/rios0rios0/orgexport/internal/domain/repositories"
	ghRepo "github.com/rios0rios0/orgexport/internal/infrastructure/repositories/github"
	cliRepo "github.com/rios0rios0/orgexport/internal/infrastructure/repositories/gitcli"
	gogitRepo "github.com/rios0rios0/orgexport/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(ghRepo.NewGitHubProviderRepository); err != nil {
		return err
	}

	// The cloner strategy is a settings choice: child-process git by
	// default, embedded go-git when configured.
	if err := container.Provide(
		func(settings *entities.Settings) domainRepos.ClonerRepository {
			if settings.Clone.Strategy == entities.CloneStrategyBuiltin {
				return gogitRepo.NewGoGitClonerRepository()
			}
			return cliRepo.NewGitClonerRepository()
		},
	); err != nil {
		return err
	}

	return nil
}
