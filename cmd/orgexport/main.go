package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/orgexport/internal/infrastructure/controllers"
)

const version = "0.1.0"

func buildRootCommand(exportController *controllers.ExportController) *cobra.Command {
	bind := exportController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:     bind.Use,
		Short:   bind.Short,
		Long:    bind.Long,
		Version: version,
		Args:    cobra.NoArgs,
		Run: func(command *cobra.Command, args []string) {
			exportController.Execute(command, args)
		},
	}

	cmd.PersistentFlags().StringP("username", "u", "",
		"GitHub username (prompted when omitted)")
	cmd.PersistentFlags().StringP("token", "t", "",
		"Personal access token (prompted when omitted)")
	cmd.PersistentFlags().StringP("dir", "d", "",
		"Directory to export into (prompted when omitted)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	exportController := injectExportController()
	cobraRoot := buildRootCommand(exportController)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'orgexport': %s", err)
	}
}
