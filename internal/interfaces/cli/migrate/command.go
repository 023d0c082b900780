package migrate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gearguard/gearguard/internal/infrastructure/database"
	"github.com/gearguard/gearguard/internal/infrastructure/migration"
	"github.com/gearguard/gearguard/internal/interfaces/cli/bootstrap"
)

var (
	env     string
	name    string
	dialect string
	steps   int
	auto    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "Use gorm AutoMigrate instead of the versioned scripts")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty numbered SQL migration for one dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&dialect, "dialect", "mysql", "Dialect directory under scripts/ (mysql, sqlite)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.StrategyGoose
	if auto {
		strategy = migration.StrategyAutoMigrate
	}
	log.Infow("running up migrations", "environment", env, "strategy", strategy)

	if err := migration.NewManager(strategy).Migrate(context.Background(), database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := migration.NewGooseStrategy().MigrateDown(context.Background(), database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, _, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	strategy := migration.NewGooseStrategy()

	version, err := strategy.GetVersion(ctx, database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	rows, err := strategy.Status(ctx, database.Get())
	if err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n\n", version)
	for _, r := range rows {
		state := "pending"
		if r.Applied {
			state = "applied " + r.At
		}
		fmt.Fprintf(out, "  %05d  %-40s  %s\n", r.Version, filepath.Base(r.Path), state)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	switch dialect {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	dir, err := filepath.Abs(filepath.Join("internal", "infrastructure", "migration", "scripts", dialect))
	if err != nil {
		return fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	if err := migration.NewGooseStrategy().Create(dir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created migration %q in %s\n", name, dir)
	return nil
}
