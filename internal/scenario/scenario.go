// Package scenario provides the built-in simulation scenarios and parameter
// sweep helpers.
package scenario

import (
	"fmt"
	"sort"

	"cbdc-sim/internal/model"
)

// Default is the baseline calibration: a mid-size open economy at potential
// output with conventional monetary policy and no CBDC programmability.
func Default() *model.SimulationConfig {
	cfg := model.NewSimulationConfig()

	s := cfg.InitialState
	s.GDP = 20000.0
	s.PotentialGDP = 20000.0
	s.InflationRate = 2.0
	s.UnemploymentRate = 4.0
	s.InterestRate = 2.5
	s.PolicyRate = 2.5
	s.GovernmentSpending = 4000.0
	s.TaxRevenue = 3500.0
	s.GovernmentDebt = 20000.0
	s.MoneySupply = 3500.0
	s.BankReserves = 200.0
	s.BankLoans = 15000.0
	s.BankDeposits = 18000.0
	s.InflationExpectations = 2.0
	s.GrowthExpectations = 2.5

	cfg.Trade.TariffRate = 0.05
	cfg.Trade.CustomsEfficiency = 0.8

	cfg.Banking.DisintermediationFactor = 0.2

	return cfg
}

// CBDCAdoption phases in a programmable CBDC over three years: introduction,
// feature expansion, full implementation, then a crisis response after a
// negative demand shock in quarter 10.
func CBDCAdoption() *model.SimulationConfig {
	cfg := Default()

	cfg.PolicyChanges = model.Schedule{
		1: {
			"cbdc_interest_rate": 0.5,
			"cbdc_supply":        500.0,
		},
		4: {
			"programmable_money_validity":      180,
			"conditional_spending_constraints": 0.1,
			"smart_contract_based_lending":     0.2,
		},
		8: {
			"cbdc_interest_rate":           1.0,
			"automatic_fiscal_transfers":   200.0,
			"programmable_asset_purchases": 300.0,
			"foreign_exchange_controls":    0.3,
		},
		12: {
			"emergency_override_mechanisms": 1.0,
			"macroprudential_tools":         0.5,
			"automatic_fiscal_transfers":    500.0,
		},
	}

	cfg.Shocks = model.Schedule{
		10: {
			"gdp":               -1000.0,
			"inflation_rate":    1.5,
			"unemployment_rate": 2.0,
		},
	}

	return cfg
}

// TradeWar escalates tariffs and exchange controls, brings in CBDC trade
// settlement as a countermeasure, and de-escalates late in the run. The
// exchange-rate regime stays floating for the whole run; schedules carry
// numeric values only, so regime selection is a per-run configuration
// choice.
func TradeWar() *model.SimulationConfig {
	cfg := Default()

	cfg.PolicyChanges = model.Schedule{
		2: {
			"tariff_rate":               0.15,
			"foreign_exchange_controls": 0.2,
		},
		4: {
			"exports": -500.0,
		},
		6: {
			"tariff_rate":               0.25,
			"foreign_exchange_controls": 0.4,
			"exchange_rate_target":      1.1,
			"intervention_threshold":    0.05,
		},
		10: {
			"cbdc_trade_settlement":    0.5,
			"cross_border_cbdc_limits": 0.3,
			"cbdc_supply":              1000.0,
		},
		14: {
			"tariff_rate":               0.1,
			"foreign_exchange_controls": 0.1,
		},
	}

	return cfg
}

// BankingCrisis builds up leverage, hits the banking sector with a loan and
// deposit shock in quarter 8, and responds with emergency monetary policy,
// QE and an attractive CBDC.
func BankingCrisis() *model.SimulationConfig {
	cfg := Default()

	cfg.PolicyChanges = model.Schedule{
		2: {
			"lending_risk_appetite": 0.7,
		},
		5: {
			"cbdc_supply":           500.0,
			"cbdc_interest_rate":    0.0,
			"macroprudential_tools": 0.2,
		},
		9: {
			"emergency_override_mechanisms": 2.0,
			"policy_rate":                   -1.0,
			"cbdc_interest_rate":            1.0,
			"smart_contract_based_lending":  0.8,
			"cbdc_supply":                   3000.0,
			"quantitative_easing":           0.05,
		},
		12: {
			"emergency_override_mechanisms": 0.0,
			"policy_rate":                   0.5,
			"cbdc_interest_rate":            0.5,
			"automatic_fiscal_transfers":    300.0,
		},
	}

	cfg.Shocks = model.Schedule{
		8: {
			"bank_loans":             -2000.0,
			"bank_deposits":          -1500.0,
			"financial_stress_index": 0.3,
			"loan_interest_rate":     2.0,
		},
	}

	return cfg
}

var builders = map[string]func() *model.SimulationConfig{
	"default":        Default,
	"cbdc_adoption":  CBDCAdoption,
	"trade_war":      TradeWar,
	"banking_crisis": BankingCrisis,
}

// List returns the built-in scenario names in lexical order.
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scenario's configuration.
func ByName(name string) (*model.SimulationConfig, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	return build(), nil
}

// WithParameter clones base and overrides one named parameter or state
// value, for sweep-style comparisons. The name resolves exactly like a
// scheduled policy change.
func WithParameter(base *model.SimulationConfig, name string, value float64) (*model.SimulationConfig, error) {
	cfg := base.Clone()
	resolver := model.NewResolver(cfg.InitialState, cfg.Macro, cfg.CBDC, cfg.Trade, cfg.Banking)
	if !resolver.Set(name, value) {
		return nil, fmt.Errorf("unknown parameter %q", name)
	}
	return cfg, nil
}
