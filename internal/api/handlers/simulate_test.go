package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cbdc-sim/internal/api/handlers"
	"cbdc-sim/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	simulateHandler := handlers.NewSimulateHandler()
	scenarioHandler := handlers.NewScenarioHandler()

	api := router.Group("/api/v1")
	api.POST("/simulate", simulateHandler.RunSimulation)
	api.POST("/simulate/compare", simulateHandler.CompareSimulations)
	api.GET("/scenarios", scenarioHandler.ListScenarios)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRunSimulation(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{
		Horizon:        5,
		IncludeHistory: true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 5, resp.Summary.Periods)
	assert.Greater(t, resp.Summary.FinalGDP, 0.0)
	assert.Len(t, resp.History, 6)
	assert.Equal(t, 20000.0, resp.History[0]["gdp"])
}

func TestRunSimulation_HistoryOmittedByDefault(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{Horizon: 3})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.History)
}

func TestRunSimulation_UnknownScenario(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{Scenario: "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestRunSimulation_UnknownParameter(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/api/v1/simulate", models.SimulateRequest{
		Parameters: map[string]float64{"not_a_knob": 1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunSimulation_MalformedJSON(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareSimulations(t *testing.T) {
	router := newRouter()

	w := postJSON(t, router, "/api/v1/simulate/compare", models.CompareRequest{
		Base: models.SimulateRequest{Horizon: 5},
		Variations: []models.Variation{
			{Name: "free_trade", Parameters: map[string]float64{"tariff_rate": 0.0}},
			{Name: "protectionist", Parameters: map[string]float64{"tariff_rate": 0.3}},
			{Name: "broken", Parameters: map[string]float64{"not_a_knob": 1}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The invalid variation is skipped, the valid ones both run.
	require.Len(t, resp.Comparison, 2)
	assert.Equal(t, "free_trade", resp.Comparison[0].Name)
	assert.Equal(t, "protectionist", resp.Comparison[1].Name)
	assert.NotEqual(t, resp.Comparison[0].Summary.FinalGDP, resp.Comparison[1].Summary.FinalGDP)
}

func TestListScenarios(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScenariosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Scenarios, 4)
	names := make([]string, 0, len(resp.Scenarios))
	for _, s := range resp.Scenarios {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "cbdc_adoption")
	assert.Contains(t, names, "trade_war")
	assert.Contains(t, names, "banking_crisis")
}
