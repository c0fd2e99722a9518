package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/orgexport/internal/domain/commands"
	"github.com/rios0rios0/orgexport/internal/domain/entities"
)

// ExportController handles the root command (the interactive export flow).
type ExportController struct {
	command  commands.Export
	settings *entities.Settings
}

// NewExportController creates a new ExportController.
func NewExportController(
	command commands.Export,
	settings *entities.Settings,
) *ExportController {
	return &ExportController{
		command:  command,
		settings: settings,
	}
}

// GetBind returns the Cobra command metadata for the export controller.
func (it *ExportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "orgexport",
		Short: "Clone every repository of one of your GitHub organizations",
		Long: `An interactive exporter for GitHub organizations.

It authenticates with your username and a personal access token, lets you
pick one of your organizations, fetches the complete repository list by
following the API's pagination, and clones each repository into a local
directory of your choice.`,
	}
}

// Execute runs the interactive export flow.
func (it *ExportController) Execute(cmd *cobra.Command, _ []string) {
	username, _ := cmd.Flags().GetString("username")
	token, _ := cmd.Flags().GetString("token")
	dir, _ := cmd.Flags().GetString("dir")
	verbose, _ := cmd.Flags().GetBool("verbose")

	err := it.command.Execute(cmd.Context(), it.settings, commands.ExportOptions{
		Username: username,
		Token:    token,
		Dir:      dir,
		Verbose:  verbose,
	})
	if err != nil {
		logger.Fatalf("Export failed: %s", err)
	}
}
