package materials

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
	results []retriever.MaterialResult
	err     error
}

func (s *stubSearcher) SearchMaterials(_ context.Context, _ string) ([]retriever.MaterialResult, error) {
	return s.results, s.err
}

func postMatch(searcher MaterialSearcher, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), searcher)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestMaterialsHandler_Success(t *testing.T) {
	searcher := &stubSearcher{
		results: []retriever.MaterialResult{
			{
				ID:             3,
				EANumber:       "EA-10452",
				Name:           "Cable Conduit 25mm",
				Description:    "Rigid PVC conduit",
				Category:       "conduits",
				TimeEstimation: "0.25",
				Specs:          map[string]any{"diameter": "25mm"},
				Similarity:     0.42,
			},
		},
	}

	recorder := postMatch(searcher, `{"query": "run cable along the wall"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "EA-10452", resp.Results[0].EANumber)
	assert.Equal(t, "25mm", resp.Results[0].Specs["diameter"])

	// weak matches still come back; material matching has no floor
	assert.Equal(t, 0.42, resp.Results[0].Similarity)
}

func TestMaterialsHandler_EmptyResults(t *testing.T) {
	recorder := postMatch(&stubSearcher{}, `{"query": "install ceiling fixture"}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"results": []}`, recorder.Body.String())
}

func TestMaterialsHandler_MissingQuery(t *testing.T) {
	recorder := postMatch(&stubSearcher{}, `{}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeValidationError, resp.Error)
}

func TestMaterialsHandler_BlankQuery(t *testing.T) {
	recorder := postMatch(&stubSearcher{err: retriever.ErrEmptyQuery}, `{"query": " "}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeBadRequest, resp.Error)
}

func TestMaterialsHandler_MatchFailure(t *testing.T) {
	recorder := postMatch(&stubSearcher{err: errors.New("connection refused")}, `{"query": "wall socket"}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestMaterialsHandler_Timeout(t *testing.T) {
	recorder := postMatch(&stubSearcher{err: context.DeadlineExceeded}, `{"query": "wall socket"}`)

	assert.Equal(t, http.StatusGatewayTimeout, recorder.Code)
}
