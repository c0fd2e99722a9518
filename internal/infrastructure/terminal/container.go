package terminal

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/orgexport/internal/domain/repositories"
)

// RegisterProviders registers the terminal prompter with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() domainRepos.Prompter {
		return NewPrompter()
	})
}
