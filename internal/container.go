package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/orgexport/internal/domain/commands"
	"github.com/rios0rios0/orgexport/internal/domain/entities"
	"github.com/rios0rios0/orgexport/internal/infrastructure/controllers"
	"github.com/rios0rios0/orgexport/internal/infrastructure/repositories"
	"github.com/rios0rios0/orgexport/internal/infrastructure/terminal"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers, bottom-up: entities -> infrastructure ->
	// domain commands -> controllers.
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := terminal.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	return nil
}
