package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/orgexport/internal"
	"github.com/rios0rios0/orgexport/internal/infrastructure/controllers"
)

func injectExportController() *controllers.ExportController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var exportController *controllers.ExportController
	if err := container.Invoke(func(ec *controllers.ExportController) {
		exportController = ec
	}); err != nil {
		panic(err)
	}

	return exportController
}
