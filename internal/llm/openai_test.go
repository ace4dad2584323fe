package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Red Running Shoes",
			expected: "Red Running Shoes",
		},
		{
			name:     "literal escape replaced",
			input:    `Product: Shoes\nBrand: Acme`,
			expected: "Product: Shoes Brand: Acme",
		},
		{
			name:     "actual newlines preserved",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeInput(tt.input))
		})
	}
}

func fakeEmbedding(seed float32) []float32 {
	vec := make([]float32, openaiEmbeddingDimension)
	for i := range vec {
		vec[i] = seed
	}

	return vec
}

func TestGenerateEmbeddings_Success(t *testing.T) {
	var gotReq embeddingRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]any{
			"object": "list",
			"data": []map[string]any{
				{"object": "embedding", "index": 1, "embedding": fakeEmbedding(0.2)},
				{"object": "embedding", "index": 0, "embedding": fakeEmbedding(0.1)},
			},
			"model": "text-embedding-3-small",
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	embeddings, err := embedder.GenerateEmbeddings(context.Background(), []string{"first text", "second text"})

	require.NoError(t, err)
	require.Len(t, embeddings, 2)

	// results follow input order via the index field, not response order
	assert.Equal(t, float32(0.1), embeddings[0][0])
	assert.Equal(t, float32(0.2), embeddings[1][0])

	assert.Equal(t, []string{"first text", "second text"}, gotReq.Input)
	assert.Equal(t, "text-embedding-3-small", gotReq.Model)
}

func TestGenerateEmbeddings_NormalizesInputs(t *testing.T) {
	var gotReq embeddingRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": fakeEmbedding(0.5)},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := embedder.GenerateEmbeddings(context.Background(), []string{`Shoes\nwith mesh`})

	require.NoError(t, err)
	assert.Equal(t, []string{"Shoes with mesh"}, gotReq.Input)
}

func TestGenerateEmbeddings_CountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": fakeEmbedding(0.5)},
			},
		}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := embedder.GenerateEmbeddings(context.Background(), []string{"a", "b"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 embeddings, got 1")
}

func TestGenerateEmbeddings_BadDimension(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": []float32{0.1, 0.2}},
			},
		}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := embedder.GenerateEmbeddings(context.Background(), []string{"a"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected embedding dimension")
}

func TestGenerateEmbeddings_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "bad-key", BaseURL: server.URL})

	_, err := embedder.GenerateEmbeddings(context.Background(), []string{"a"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGenerateEmbeddings_NoTexts(t *testing.T) {
	embedder := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test-key"})

	_, err := embedder.GenerateEmbeddings(context.Background(), nil)

	assert.Error(t, err)
}
