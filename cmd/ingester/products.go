package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"codeberg.org/voltshop/server/internal/config"
	"codeberg.org/voltshop/server/internal/llm"
	"codeberg.org/voltshop/server/internal/logger"
	"codeberg.org/voltshop/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// shape of one entry in the products seed file
type seedProduct struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Brand       string      `json:"brand"`
	Thumbnail   string      `json:"thumbnail"`
}

type productSeedFile struct {
	Products []seedProduct `json:"products"`
}

// loads, embeds and inserts products from a seed JSON file
func IngestProducts(cfg *config.Config, db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting product ingestion", "path", flags.Path, "clear", flags.Clear)

	storageClient := storage.NewClientFromPool(db)
	defer storageClient.Close() // no-op since we don't own the pool

	if flags.Clear {
		logger.Info("clearing existing products")

		if err := storageClient.ClearAllProducts(ctx); err != nil {
			return fmt.Errorf("failed to clear existing products: %w", err)
		}
	}

	data, err := os.ReadFile(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to read products file: %w", err)
	}

	var seed productSeedFile

	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse products JSON: %w", err)
	}

	logger.Info("loaded seed products", "count", len(seed.Products))

	// build one descriptive content blob per product; the embedding is
	// computed from this blob, not the raw fields
	records := make([]storage.ProductRecord, len(seed.Products))
	texts := make([]string, len(seed.Products))

	for i, p := range seed.Products {
		content := buildProductContent(p)

		records[i] = storage.ProductRecord{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price.String(),
			Category:    p.Category,
			Brand:       p.Brand,
			ImageURL:    p.Thumbnail,
			Content:     content,
		}
		texts[i] = content
	}

	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	logger.Info("generating embeddings for products")

	embeddings, err := embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	logger.Info("generated embeddings", "count", len(embeddings))

	if err := storageClient.InsertProductsBatch(ctx, records, embeddings); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}

	// verify insertion
	count, err := storageClient.GetProductCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify product count: %w", err)
	}

	logger.Info("successfully ingested products",
		"products_inserted", len(records),
		"total_products", count,
	)

	return nil
}

func buildProductContent(p seedProduct) string {
	return fmt.Sprintf("Product: %s\nBrand: %s\nCategory: %s\nDescription: %s\nPrice: $%s",
		p.Title, p.Brand, p.Category, p.Description, p.Price.String())
}
