package commands

import (
	"fmt"

	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/db"
	"pet-adoption/internal/seed"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (g *globals) openDB() (*sqlx.DB, error) {
	if g.dbDriver == config.DriverMemory {
		return nil, fmt.Errorf("db-driver %q has nothing to migrate or seed; use sqlite or pgx", g.dbDriver)
	}
	return db.Open(g.dbDriver, g.dsn)
}

func newMigrateCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := g.openDB()
			if err != nil {
				return err
			}
			defer db.Close(conn)

			if err := db.Migrate(conn.DB, g.dbDriver); err != nil {
				return err
			}
			g.log.Info("migrations applied", zap.String("driver", g.dbDriver))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := g.openDB()
			if err != nil {
				return err
			}
			defer db.Close(conn)

			if err := db.MigrateDown(conn.DB, g.dbDriver); err != nil {
				return err
			}
			g.log.Info("migration rolled back", zap.String("driver", g.dbDriver))
			return nil
		},
	})

	return cmd
}

func newSeedCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the database and load the sample pets, reviews and adoptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := g.openDB()
			if err != nil {
				return err
			}
			defer db.Close(conn)

			if err := db.Migrate(conn.DB, g.dbDriver); err != nil {
				return err
			}

			f, err := seed.Default()
			if err != nil {
				return err
			}
			res, err := seed.Run(cmd.Context(), storage.New(conn), f, nil)
			if err != nil {
				return err
			}

			g.log.Info("database seeded",
				zap.Int("pets", res.Pets),
				zap.Int("reviews", res.Reviews),
				zap.Int("adoptions", res.Adoptions),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d pets, %d reviews, %d adoptions\n", res.Pets, res.Reviews, res.Adoptions)
			return nil
		},
	}
}
