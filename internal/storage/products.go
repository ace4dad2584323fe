package storage

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/voltshop/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// deletes all existing products
func (c *Client) ClearAllProducts(ctx context.Context) error {
	_, err := c.pool.Exec(ctx, deleteAllProductsQuery)
	if err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	return nil
}

// inserts products with their embeddings in a single transaction
func (c *Client) InsertProductsBatch(ctx context.Context, records []ProductRecord, embeddings [][]float32) error {
	if len(records) != len(embeddings) {
		return fmt.Errorf("records and embeddings length mismatch")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// defer rollback - will be no-op if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}

	for i, record := range records {
		batch.Queue(insertProductQuery,
			record.ID,
			record.Title,
			record.Description,
			record.Price,
			record.Category,
			record.Brand,
			record.ImageURL,
			record.Content,
			pgvector.NewVector(embeddings[i]),
		)
	}

	br := tx.SendBatch(ctx, batch)

	for i := range len(records) {
		_, err := br.Exec()
		if err != nil {
			br.Close() //nolint:errcheck,gosec // G104: error path cleanup
			return fmt.Errorf("failed to insert product %d: %w", i, err)
		}
	}

	// must close batch results before committing, otherwise connection is still "busy"
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// returns the number of products eligible for similarity search
func (c *Client) GetProductCount(ctx context.Context) (int, error) {
	var count int

	err := c.pool.QueryRow(ctx, countProductsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get product count: %w", err)
	}

	return count, nil
}
