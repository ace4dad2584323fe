package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Client owns the ingestion write path: clearing catalogs and inserting
// records together with their embeddings. The online retrieval path never
// writes; only the ingester uses this package.
type Client struct {
	pool     *pgxpool.Pool
	ownsPool bool
}

func NewClient(ctx context.Context, connString string) (*Client, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{pool: pool, ownsPool: true}, nil
}

// wraps a shared pool; Close becomes a no-op
func NewClientFromPool(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

func (c *Client) Close() {
	if c.ownsPool {
		c.pool.Close()
	}
}

// Setup enables the pgvector extension and creates the catalog tables and
// their HNSW cosine indexes. Safe to run repeatedly.
func (c *Client) Setup(ctx context.Context) error {
	for _, stmt := range setupStatements {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run setup statement: %w", err)
		}
	}

	return nil
}
