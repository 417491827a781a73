package models

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	// Scenario selects the built-in base configuration (default: "default")
	Scenario string `json:"scenario,omitempty"`

	Horizon       int   `json:"horizon,omitempty"`
	Seed          int64 `json:"seed,omitempty"`
	SaveFrequency int   `json:"save_frequency,omitempty"`

	ExchangeRateRegime string `json:"exchange_rate_regime,omitempty"`

	// Parameters overrides named parameters or initial-state values on top
	// of the scenario, resolved like scheduled policy changes
	Parameters map[string]float64 `json:"parameters,omitempty"`

	Shocks        map[int]map[string]float64 `json:"shocks,omitempty"`
	PolicyChanges map[int]map[string]float64 `json:"policy_changes,omitempty"`

	IncludeHistory bool `json:"include_history,omitempty"`
}

// CompareRequest represents a request to compare simulation variations
type CompareRequest struct {
	Base       SimulateRequest `json:"base"`
	Variations []Variation     `json:"variations" binding:"required"`
}

// Variation defines one parameter variation to compare
type Variation struct {
	Name       string             `json:"name" binding:"required"`
	Parameters map[string]float64 `json:"parameters" binding:"required"`
}
