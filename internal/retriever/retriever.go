package retriever

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// SearchProducts embeds the query text and returns the products most
// similar to it, best match first. Matches at or below the similarity
// floor are excluded; no products clearing the floor is a valid empty
// result, not an error.
func (c *Client) SearchProducts(ctx context.Context, queryText string) ([]ProductResult, error) {
	return search(ctx, c, queryText, productPolicy(), searchProductsQuery, scanProduct)
}

// SearchMaterials embeds the query text and returns the closest materials,
// best match first. No similarity floor applies: the matcher always
// surfaces the best available candidates, however weak.
func (c *Client) SearchMaterials(ctx context.Context, queryText string) ([]MaterialResult, error) {
	return search(ctx, c, queryText, materialPolicy(), searchMaterialsQuery, scanMaterial)
}

// shared embed-then-rank pipeline for one catalog. Validation rejects
// blank queries before any provider call is made.
func search[T any](ctx context.Context, c *Client, queryText string, policy Policy, query string, scanRow func(rows pgx.Rows) (T, error)) ([]T, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, ErrEmptyQuery
	}

	embedding, err := c.embedder.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	args := []any{pgvector.NewVector(embedding)}

	if policy.MinSimilarity != nil {
		args = append(args, *policy.MinSimilarity)
	}

	args = append(args, policy.Limit)

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	defer rows.Close()

	var results []T

	for rows.Next() {
		result, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan row: %w", ErrQuery, err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	return results, nil
}

func scanProduct(rows pgx.Rows) (ProductResult, error) {
	var result ProductResult

	err := rows.Scan(
		&result.ID,
		&result.Name,
		&result.Price,
		&result.Description,
		&result.ImageURL,
		&result.Similarity,
	)

	return result, err
}

func scanMaterial(rows pgx.Rows) (MaterialResult, error) {
	var result MaterialResult

	err := rows.Scan(
		&result.ID,
		&result.EANumber,
		&result.Name,
		&result.Description,
		&result.Category,
		&result.TimeEstimation,
		&result.Specs,
		&result.Similarity,
	)

	return result, err
}
