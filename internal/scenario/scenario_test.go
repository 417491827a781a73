package scenario_test

import (
	"testing"

	"cbdc-sim/internal/model"
	"cbdc-sim/internal/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	assert.Equal(t, []string{"banking_crisis", "cbdc_adoption", "default", "trade_war"}, scenario.List())
}

func TestByName(t *testing.T) {
	for _, name := range scenario.List() {
		cfg, err := scenario.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, 20, cfg.Horizon, name)
		assert.Equal(t, 20000.0, cfg.InitialState.GDP, name)
	}

	_, err := scenario.ByName("nope")
	assert.Error(t, err)
}

func TestDefaultCalibration(t *testing.T) {
	cfg := scenario.Default()

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 1, cfg.SaveFrequency)
	assert.Equal(t, 4000.0, cfg.InitialState.GovernmentSpending)
	assert.Equal(t, 18000.0, cfg.InitialState.BankDeposits)
	assert.Equal(t, 0.05, cfg.Trade.TariffRate)
	assert.Equal(t, model.RegimeFloating, cfg.Trade.Regime)
	assert.Equal(t, 0.2, cfg.Banking.DisintermediationFactor)
	assert.Equal(t, 0.0, cfg.CBDC.InterestRate)
	assert.Empty(t, cfg.Shocks)
	assert.Empty(t, cfg.PolicyChanges)
}

func TestCBDCAdoptionSchedules(t *testing.T) {
	cfg := scenario.CBDCAdoption()

	assert.Equal(t, 0.5, cfg.PolicyChanges[1]["cbdc_interest_rate"])
	assert.Equal(t, 180.0, cfg.PolicyChanges[4]["programmable_money_validity"])
	assert.Equal(t, 500.0, cfg.PolicyChanges[12]["automatic_fiscal_transfers"])
	assert.Equal(t, -1000.0, cfg.Shocks[10]["gdp"])
}

func TestBankingCrisisSchedules(t *testing.T) {
	cfg := scenario.BankingCrisis()

	assert.Equal(t, -2000.0, cfg.Shocks[8]["bank_loans"])
	assert.Equal(t, 0.05, cfg.PolicyChanges[9]["quantitative_easing"])
	assert.Equal(t, 0.0, cfg.PolicyChanges[12]["emergency_override_mechanisms"])
}

func TestWithParameter(t *testing.T) {
	base := scenario.Default()

	cfg, err := scenario.WithParameter(base, "tariff_rate", 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Trade.TariffRate)
	// The base is untouched.
	assert.Equal(t, 0.05, base.Trade.TariffRate)

	cfg, err = scenario.WithParameter(base, "gdp", 21000)
	require.NoError(t, err)
	assert.Equal(t, 21000.0, cfg.InitialState.GDP)
	assert.Equal(t, 20000.0, base.InitialState.GDP)

	_, err = scenario.WithParameter(base, "no_such_knob", 1)
	assert.Error(t, err)
}
