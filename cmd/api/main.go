package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"proposal_catalog/internal/adapter/http/routes"
	"proposal_catalog/internal/adapter/persistence/repository"
	"proposal_catalog/internal/config"
	"proposal_catalog/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Proposal Catalog API
// @version         1.0
// @description     Cities, clients, products with add-ons and commercial proposals.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "proposal-catalog",
		Short:         "Proposal catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create missing catalog tables and update the proposals table",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the starter cities and products that are missing",
			RunE: func(cmd *cobra.Command, args []string) error {
				return seed(cmd.Context())
			},
		},
	)
	return cmd
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	return routes.Run(cfg)
}

func migrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if cfg.CatalogSource == config.SourceFixtures {
		return database.ErrEphemeralStore
	}
	db, err := database.ConnectCatalogStore(cfg)
	if err != nil {
		return err
	}
	if err := database.MigrateHosted(db, cfg.ProposalStore == config.ProposalStoreSQL); err != nil {
		return err
	}
	if cfg.ProposalStore == config.ProposalStoreDynamo {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return err
		}
		if err := database.EnsureProposalsTable(ctx, ddb, cfg.ProposalsTable); err != nil {
			return err
		}
	}
	log.Printf("[migrate] done source=%s", cfg.CatalogSource)
	return nil
}

func seed(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if cfg.CatalogSource == config.SourceFixtures {
		return database.ErrEphemeralStore
	}
	db, err := database.ConnectCatalogStore(cfg)
	if err != nil {
		return err
	}
	if err := database.MigrateHosted(db, false); err != nil {
		return err
	}
	n, err := repository.SeedFixtures(ctx, db)
	if err != nil {
		return err
	}
	log.Printf("[seed] rows written=%d", n)
	return nil
}
