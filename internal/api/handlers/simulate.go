package handlers

import (
	"fmt"
	"net/http"

	"cbdc-sim/internal/api/models"
	"cbdc-sim/internal/model"
	"cbdc-sim/internal/scenario"
	"cbdc-sim/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler { return &SimulateHandler{} }

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := buildConfig(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	engine, err := sim.New(cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := engine.Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.SimulateResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if req.IncludeHistory {
		history := make([]map[string]float64, len(result.History))
		for i, snap := range result.History {
			history[i] = snap
		}
		response.History = history
	}

	c.JSON(http.StatusOK, response)
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	base, err := buildConfig(req.Base)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		cfg := base.Clone()
		if err := applyParameters(cfg, variation.Parameters); err != nil {
			continue // Skip invalid variations
		}

		engine, err := sim.New(cfg)
		if err != nil {
			continue
		}
		result, err := engine.Run()
		if err != nil {
			continue
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func buildConfig(req models.SimulateRequest) (*model.SimulationConfig, error) {
	name := req.Scenario
	if name == "" {
		name = "default"
	}
	cfg, err := scenario.ByName(name)
	if err != nil {
		return nil, err
	}

	if req.Horizon > 0 {
		cfg.Horizon = req.Horizon
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if req.SaveFrequency > 0 {
		cfg.SaveFrequency = req.SaveFrequency
	}

	switch req.ExchangeRateRegime {
	case "":
	case string(model.RegimeFloating), string(model.RegimeManaged), string(model.RegimeFixed):
		cfg.Trade.Regime = model.ExchangeRateRegime(req.ExchangeRateRegime)
	default:
		return nil, fmt.Errorf("unknown exchange_rate_regime %q", req.ExchangeRateRegime)
	}

	if err := applyParameters(cfg, req.Parameters); err != nil {
		return nil, err
	}

	if req.Shocks != nil {
		cfg.Shocks = model.Schedule(req.Shocks).Clone()
	}
	if req.PolicyChanges != nil {
		cfg.PolicyChanges = model.Schedule(req.PolicyChanges).Clone()
	}

	return cfg, nil
}

func applyParameters(cfg *model.SimulationConfig, params map[string]float64) error {
	if len(params) == 0 {
		return nil
	}
	resolver := model.NewResolver(cfg.InitialState, cfg.Macro, cfg.CBDC, cfg.Trade, cfg.Banking)
	for name, value := range params {
		if !resolver.Set(name, value) {
			return fmt.Errorf("unknown parameter %q", name)
		}
	}
	return nil
}

func buildSummary(result *sim.Result) models.Summary {
	final := result.Final()
	return models.Summary{
		Periods:              result.Periods,
		FinalGDP:             final["gdp"],
		FinalInflation:       final["inflation_rate"],
		FinalUnemployment:    final["unemployment_rate"],
		FinalPolicyRate:      final["policy_rate"],
		FinalCBDCSupply:      final["cbdc_supply"],
		FinalBankDeposits:    final["bank_deposits"],
		FinancialStressIndex: final["financial_stress_index"],
	}
}
