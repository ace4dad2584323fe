package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "codeberg.org/voltshop/server/internal/errors"
	"codeberg.org/voltshop/server/internal/retriever"
)

type stubSearcher struct {
	results   []retriever.ProductResult
	err       error
	lastQuery string
}

func (s *stubSearcher) SearchProducts(_ context.Context, queryText string) ([]retriever.ProductResult, error) {
	s.lastQuery = queryText
	return s.results, s.err
}

func newTestRouter(searcher ProductSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), searcher)

	return router
}

func postSearch(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestSearchHandler_Success(t *testing.T) {
	searcher := &stubSearcher{
		results: []retriever.ProductResult{
			{ID: 1, Name: "Red Running Shoes", Price: "59.99", Description: "Lightweight runners", ImageURL: "https://cdn.example.com/shoes.jpg", Similarity: 0.91},
		},
	}

	recorder := postSearch(newTestRouter(searcher), `{"query": "red shoes"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "red shoes", searcher.lastQuery)

	var resp Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Red Running Shoes", resp.Results[0].Name)
	assert.Equal(t, 0.91, resp.Results[0].Similarity)
}

func TestSearchHandler_EmptyResults(t *testing.T) {
	recorder := postSearch(newTestRouter(&stubSearcher{}), `{"query": "quantum flux capacitor"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	// results must serialize as an empty array, never null
	assert.JSONEq(t, `{"results": []}`, recorder.Body.String())
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	recorder := postSearch(newTestRouter(&stubSearcher{}), `{}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeValidationError, resp.Error)
}

func TestSearchHandler_MalformedJSON(t *testing.T) {
	recorder := postSearch(newTestRouter(&stubSearcher{}), `{"query": `)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSearchHandler_BlankQuery(t *testing.T) {
	searcher := &stubSearcher{err: retriever.ErrEmptyQuery}

	recorder := postSearch(newTestRouter(searcher), `{"query": "   "}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeBadRequest, resp.Error)
	assert.Contains(t, resp.Message, "query")
}

func TestSearchHandler_SearchFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("connection refused")}

	recorder := postSearch(newTestRouter(searcher), `{"query": "red shoes"}`)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeServerError, resp.Error)
}

func TestSearchHandler_Timeout(t *testing.T) {
	searcher := &stubSearcher{err: context.DeadlineExceeded}

	recorder := postSearch(newTestRouter(searcher), `{"query": "red shoes"}`)

	assert.Equal(t, http.StatusGatewayTimeout, recorder.Code)
}
