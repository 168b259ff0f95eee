package restapi_test

import (
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/domain/entity"
	"capy_automator/internal/infrastructure/restapi"
	"capy_automator/internal/infrastructure/resultstore"
	"capy_automator/internal/pkg/metrics"
)

func newRouter(t *testing.T) (*gin.Engine, *resultstore.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := resultstore.NewMemoryStore()
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg).WalletDone(entity.OutcomeSucceeded)
	router := restapi.SetupRouter(restapi.NewResultsHandler(store), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return router, store
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestResultsEndpoints(t *testing.T) {
	router, store := newRouter(t)
	store.Record(entity.PipelineResult{WalletLine: 1, Address: "0x1", Outcome: entity.OutcomeSucceeded, ExamplesMinted: 5})
	failed := entity.PipelineResult{WalletLine: 2, Address: "0x2", Outcome: entity.OutcomeSucceeded}
	failed.Fail(entity.StageBreed, entity.ErrBreedFailed)
	store.Record(failed)

	w := get(router, "/api/v1/results")
	require.Equal(t, http.StatusOK, w.Code)
	var all restapi.APIResultsResponse
	require.NoError(t, stdjson.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all.Data.Results, 2)
	assert.Equal(t, "0x1", all.Data.Results[0].Address)
	assert.Equal(t, 5, all.Data.Results[0].ExamplesMinted)
	assert.Equal(t, 2, all.Summary.Total)
	assert.Equal(t, 1, all.Summary.Failed)

	w = get(router, "/api/v1/results/failed")
	require.Equal(t, http.StatusOK, w.Code)
	var onlyFailed restapi.APIResultsResponse
	require.NoError(t, stdjson.Unmarshal(w.Body.Bytes(), &onlyFailed))
	require.Len(t, onlyFailed.Data.Results, 1)
	assert.Equal(t, "breed", onlyFailed.Data.Results[0].FailedStage)
	assert.Contains(t, onlyFailed.Data.Results[0].Error, "breed failed")
	assert.Equal(t, 2, onlyFailed.Summary.Total)
}

func TestEmptyResults(t *testing.T) {
	router, _ := newRouter(t)

	w := get(router, "/api/v1/results")

	require.Equal(t, http.StatusOK, w.Code)
	var resp restapi.APIResultsResponse
	require.NoError(t, stdjson.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Results)
	assert.Equal(t, "No wallets processed yet.", resp.StatusMessage)
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := newRouter(t)

	assert.Equal(t, http.StatusOK, get(router, "/healthz").Code)

	w := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "capy_automator_wallets_total")
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(t)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/nope").Code)
}
