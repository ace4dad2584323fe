package retriever

import (
	"context"
	"errors"

	"codeberg.org/voltshop/server/internal/llm"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sentinel errors distinguishing the retrieval failure modes.
// Empty-due-to-no-match is a success with zero rows and never an error.
var (
	// the caller supplied a missing or blank query
	ErrEmptyQuery = errors.New("query must be a non-empty string")

	// the embedding provider call failed
	ErrProvider = errors.New("embedding provider failed")

	// the similarity query against the datastore failed
	ErrQuery = errors.New("similarity search failed")
)

// subset of pgxpool.Pool used by the retriever, extracted for testing
type queryPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Client executes embedding-backed similarity searches against the
// product and material catalogs.
type Client struct {
	pool     queryPool
	embedder llm.Embedder
}

func New(pool *pgxpool.Pool, embedder llm.Embedder) *Client {
	return &Client{pool: pool, embedder: embedder}
}

// per-catalog retrieval policy. MinSimilarity nil means no floor: every
// embedded record is scored and only the top rows are returned.
type Policy struct {
	MinSimilarity *float64
	Limit         int
}

// a product row scored against the query embedding
type ProductResult struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Similarity  float64 `json:"similarity"`
}

// a material row scored against the query embedding
type MaterialResult struct {
	ID             int            `json:"id"`
	EANumber       string         `json:"ea_number"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	TimeEstimation string         `json:"time_estimation"`
	Specs          map[string]any `json:"specs"`
	Similarity     float64        `json:"similarity"`
}
