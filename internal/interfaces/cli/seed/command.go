package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gearguard/gearguard/internal/infrastructure/database"
	"github.com/gearguard/gearguard/internal/interfaces/cli/bootstrap"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo data",
		Long:  `Insert a demo set of teams, users and equipment into an empty database.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	res, err := Seed(context.Background(), database.Get(), time.Now().UTC())
	if err != nil {
		return err
	}

	log.Infow("demo data inserted", "teams", res.Teams, "users", res.Users, "equipment", res.Equipment)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d teams, %d users, %d equipment\n", res.Teams, res.Users, res.Equipment)
	return nil
}
