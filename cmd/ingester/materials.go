package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"codeberg.org/voltshop/server/internal/config"
	"codeberg.org/voltshop/server/internal/llm"
	"codeberg.org/voltshop/server/internal/logger"
	"codeberg.org/voltshop/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// shape of one entry in the materials seed file
type seedMaterial struct {
	ID             int            `json:"id"`
	EANumber       string         `json:"ea_number"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Specs          map[string]any `json:"specs"`
	TimeEstimation json.Number    `json:"time_estimation"`
	Price          json.Number    `json:"price"`
}

type materialSeedFile struct {
	DatabaseMaterials []seedMaterial `json:"database_materials"`
}

// loads, embeds and inserts materials from a seed JSON file
func IngestMaterials(cfg *config.Config, db *pgxpool.Pool, flags config.Flags) error {
	ctx := context.Background()
	logger.Info("starting material ingestion", "path", flags.Path, "clear", flags.Clear)

	storageClient := storage.NewClientFromPool(db)
	defer storageClient.Close()

	if flags.Clear {
		logger.Info("clearing existing materials")

		if err := storageClient.ClearAllMaterials(ctx); err != nil {
			return fmt.Errorf("failed to clear existing materials: %w", err)
		}
	}

	data, err := os.ReadFile(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to read materials file: %w", err)
	}

	var seed materialSeedFile

	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse materials JSON: %w", err)
	}

	logger.Info("loaded seed materials", "count", len(seed.DatabaseMaterials))

	// the embedding text intentionally combines name, description,
	// category and the spec keys/values, so spec sheets are searchable
	records := make([]storage.MaterialRecord, len(seed.DatabaseMaterials))
	texts := make([]string, len(seed.DatabaseMaterials))

	for i, m := range seed.DatabaseMaterials {
		records[i] = storage.MaterialRecord{
			ID:             m.ID,
			EANumber:       m.EANumber,
			Name:           m.Name,
			Description:    m.Description,
			Category:       m.Category,
			Specs:          m.Specs,
			TimeEstimation: m.TimeEstimation.String(),
			Price:          m.Price.String(),
		}
		texts[i] = buildMaterialContent(m)
	}

	embedder := llm.NewOpenAIEmbedder(llm.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	logger.Info("generating embeddings for materials")

	embeddings, err := embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}

	logger.Info("generated embeddings", "count", len(embeddings))

	if err := storageClient.InsertMaterialsBatch(ctx, records, embeddings); err != nil {
		return fmt.Errorf("failed to insert materials: %w", err)
	}

	count, err := storageClient.GetMaterialCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify material count: %w", err)
	}

	logger.Info("successfully ingested materials",
		"materials_inserted", len(records),
		"total_materials", count,
	)

	return nil
}

func buildMaterialContent(m seedMaterial) string {
	// sorted keys keep the blob stable across runs
	keys := make([]string, 0, len(m.Specs))
	for k := range m.Specs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %v", k, m.Specs[k]))
	}

	return fmt.Sprintf("Material: %s\nDescription: %s\nCategory: %s\nSpecs: %s",
		m.Name, m.Description, m.Category, strings.Join(pairs, ", "))
}
