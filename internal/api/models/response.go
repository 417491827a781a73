package models

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	ID      string               `json:"id"`
	Status  string               `json:"status"`
	Summary Summary              `json:"summary"`
	History []map[string]float64 `json:"history,omitempty"`
}

// Summary contains the end-of-run aggregates
type Summary struct {
	Periods              int     `json:"periods"`
	FinalGDP             float64 `json:"final_gdp"`
	FinalInflation       float64 `json:"final_inflation"`
	FinalUnemployment    float64 `json:"final_unemployment"`
	FinalPolicyRate      float64 `json:"final_policy_rate"`
	FinalCBDCSupply      float64 `json:"final_cbdc_supply"`
	FinalBankDeposits    float64 `json:"final_bank_deposits"`
	FinancialStressIndex float64 `json:"financial_stress_index"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string  `json:"name"`
	Summary Summary `json:"summary"`
}

// ScenarioInfo describes one built-in scenario
type ScenarioInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Horizon     int    `json:"horizon"`
}

// ScenariosResponse lists the built-in scenarios
type ScenariosResponse struct {
	Scenarios []ScenarioInfo `json:"scenarios"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
