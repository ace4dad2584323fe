package retriever

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embedder stub that records calls and returns a canned vector or error
type stubEmbedder struct {
	calls     int
	embedding []float32
	err       error
}

func (s *stubEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	s.calls++
	return s.embedding, s.err
}

func (s *stubEmbedder) GenerateEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	s.calls++

	if s.err != nil {
		return nil, s.err
	}

	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = s.embedding
	}

	return out, nil
}

// pool stub whose Query always fails, capturing the args it was given
type failingPool struct {
	err  error
	sql  string
	args []any
}

func (p *failingPool) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	p.sql = sql
	p.args = args

	return nil, p.err
}

func TestSearchProducts_EmptyQuery(t *testing.T) {
	embedder := &stubEmbedder{}
	client := &Client{pool: nil, embedder: embedder}

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := client.SearchProducts(context.Background(), query)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}

	// validation must reject blank input before spending an embedding call
	assert.Equal(t, 0, embedder.calls)
}

func TestSearchMaterials_EmptyQuery(t *testing.T) {
	embedder := &stubEmbedder{}
	client := &Client{pool: nil, embedder: embedder}

	_, err := client.SearchMaterials(context.Background(), "  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, 0, embedder.calls)
}

func TestSearchProducts_ProviderFailure(t *testing.T) {
	cause := errors.New("embedding API returned status 500")
	client := &Client{
		pool:     nil,
		embedder: &stubEmbedder{err: cause},
	}

	_, err := client.SearchProducts(context.Background(), "red shoes")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
	assert.ErrorIs(t, err, cause, "provider error should be wrapped, not swallowed")
	assert.NotErrorIs(t, err, ErrQuery)
}

func TestSearchProducts_QueryFailure(t *testing.T) {
	cause := errors.New("connection refused")
	pool := &failingPool{err: cause}
	client := &Client{
		pool:     pool,
		embedder: &stubEmbedder{embedding: []float32{0.1, 0.2, 0.3}},
	}

	_, err := client.SearchProducts(context.Background(), "red shoes")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuery)
	assert.ErrorIs(t, err, cause)
}

func TestSearchProducts_PolicyArgs(t *testing.T) {
	pool := &failingPool{err: errors.New("stop here")}
	client := &Client{
		pool:     pool,
		embedder: &stubEmbedder{embedding: []float32{0.1, 0.2, 0.3}},
	}

	_, _ = client.SearchProducts(context.Background(), "desk lamp")

	// vector, similarity floor, limit
	require.Len(t, pool.args, 3)
	assert.Equal(t, 0.5, pool.args[1])
	assert.Equal(t, 4, pool.args[2])
	assert.Equal(t, searchProductsQuery, pool.sql)
}

func TestSearchMaterials_PolicyArgs(t *testing.T) {
	pool := &failingPool{err: errors.New("stop here")}
	client := &Client{
		pool:     pool,
		embedder: &stubEmbedder{embedding: []float32{0.1, 0.2, 0.3}},
	}

	_, _ = client.SearchMaterials(context.Background(), "cable conduit")

	// vector and limit only: material matching applies no similarity floor
	require.Len(t, pool.args, 2)
	assert.Equal(t, 3, pool.args[1])
	assert.Equal(t, searchMaterialsQuery, pool.sql)
}

func TestPolicies(t *testing.T) {
	product := productPolicy()
	require.NotNil(t, product.MinSimilarity)
	assert.Equal(t, 0.5, *product.MinSimilarity)
	assert.Equal(t, 4, product.Limit)

	material := materialPolicy()
	assert.Nil(t, material.MinSimilarity)
	assert.Equal(t, 3, material.Limit)
}
