package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/voltshop/server/internal/config"
	"codeberg.org/voltshop/server/internal/logger"
	"codeberg.org/voltshop/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ingester <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  setup      - enable pgvector and create catalog tables")
		fmt.Println("  products   - embed and load products from a seed JSON file")
		fmt.Println("  materials  - embed and load materials from a seed JSON file")
		fmt.Println("  all        - ingest everything (products, materials)")
		fmt.Println("\nOptions:")
		fmt.Println("  --path <path>  - Custom path to the seed file")
		fmt.Println("  --clear        - Clear existing data before ingesting")
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	// route to appropriate command
	switch command {
	case "setup":
		storageClient := storage.NewClientFromPool(db)
		if err := storageClient.Setup(ctx); err != nil {
			logger.Fatal("failed to set up schema", "error", err)
		}

		logger.Info("schema ready")

	case "products":
		flags := config.ParseProductFlags()
		if err := IngestProducts(cfg, db, flags); err != nil {
			logger.Fatal("failed to ingest products", "error", err)
		}

	case "materials":
		flags := config.ParseMaterialFlags()
		if err := IngestMaterials(cfg, db, flags); err != nil {
			logger.Fatal("failed to ingest materials", "error", err)
		}

	case "all":
		productFlags := config.DefaultProductFlags()
		materialFlags := config.DefaultMaterialFlags()

		// check for --clear flag
		for _, arg := range os.Args[2:] {
			if arg == "--clear" {
				productFlags.Clear = true
				materialFlags.Clear = true
			}
		}

		logger.Info("ingesting all data (products, materials)")

		if err := IngestProducts(cfg, db, productFlags); err != nil {
			logger.Fatal("failed to ingest products", "error", err)
		}

		if err := IngestMaterials(cfg, db, materialFlags); err != nil {
			logger.Fatal("failed to ingest materials", "error", err)
		}

		logger.Info("successfully ingested all data")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
