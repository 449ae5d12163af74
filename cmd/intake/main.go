package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"intake/internal/interfaces/cli/configcmd"
	"intake/internal/interfaces/cli/migrate"
	"intake/internal/interfaces/cli/server"
	"intake/internal/interfaces/cli/versioncmd"
)

// @title Intake API
// @version 1.0
// @description Submission and staff review of support intakes.
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	rootCmd := &cobra.Command{
		Use:          "intake",
		Short:        "Intake - support request intake service",
		Long:         `Intake accepts support requests, classifies them by keyword and lets staff review them over an authenticated API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		configcmd.NewCommand(),
		versioncmd.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
