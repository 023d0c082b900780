package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gearguard/gearguard/internal/interfaces/cli/migrate"
	"github.com/gearguard/gearguard/internal/interfaces/cli/seed"
	"github.com/gearguard/gearguard/internal/interfaces/cli/server"
	"github.com/gearguard/gearguard/internal/interfaces/cli/sweep"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gearguard",
		Short: "GearGuard - maintenance request tracking",
		Long:  `GearGuard tracks maintenance requests against plant equipment, with an HTTP API, scheduled sweeps and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
