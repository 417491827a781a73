package handlers

import (
	"net/http"

	"cbdc-sim/internal/api/models"
	"cbdc-sim/internal/scenario"

	"github.com/gin-gonic/gin"
)

var scenarioDescriptions = map[string]string{
	"default":        "Baseline open economy with conventional monetary policy and no CBDC programmability",
	"cbdc_adoption":  "Phased CBDC introduction with a mid-run demand shock and crisis response",
	"trade_war":      "Tariff escalation with exchange controls and a CBDC trade-settlement countermeasure",
	"banking_crisis": "Banking sector stress with emergency monetary policy, QE and an attractive CBDC",
}

// ScenarioHandler handles scenario listing requests
type ScenarioHandler struct{}

func NewScenarioHandler() *ScenarioHandler { return &ScenarioHandler{} }

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	names := scenario.List()
	infos := make([]models.ScenarioInfo, 0, len(names))
	for _, name := range names {
		cfg, err := scenario.ByName(name)
		if err != nil {
			continue
		}
		infos = append(infos, models.ScenarioInfo{
			Name:        name,
			Description: scenarioDescriptions[name],
			Horizon:     cfg.Horizon,
		})
	}
	c.JSON(http.StatusOK, models.ScenariosResponse{Scenarios: infos})
}
