package storage

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/voltshop/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// deletes all existing materials
func (c *Client) ClearAllMaterials(ctx context.Context) error {
	_, err := c.pool.Exec(ctx, deleteAllMaterialsQuery)
	if err != nil {
		return fmt.Errorf("failed to clear materials: %w", err)
	}

	return nil
}

// inserts materials with their embeddings in a single transaction
func (c *Client) InsertMaterialsBatch(ctx context.Context, records []MaterialRecord, embeddings [][]float32) error {
	if len(records) != len(embeddings) {
		return fmt.Errorf("records and embeddings length mismatch")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}

	for i, record := range records {
		batch.Queue(insertMaterialQuery,
			record.ID,
			record.EANumber,
			record.Name,
			record.Description,
			record.Category,
			record.Specs,
			record.TimeEstimation,
			record.Price,
			pgvector.NewVector(embeddings[i]),
		)
	}

	br := tx.SendBatch(ctx, batch)

	for i := range len(records) {
		_, err := br.Exec()
		if err != nil {
			br.Close() //nolint:errcheck,gosec // G104: error path cleanup
			return fmt.Errorf("failed to insert material %d: %w", i, err)
		}
	}

	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// returns the number of materials eligible for similarity search
func (c *Client) GetMaterialCount(ctx context.Context) (int, error) {
	var count int

	err := c.pool.QueryRow(ctx, countMaterialsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get material count: %w", err)
	}

	return count, nil
}
