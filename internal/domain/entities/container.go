package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings come from the first config file found, or the defaults.
	return container.Provide(LoadDefaultSettings)
}
