package sim_test

import (
	"math"
	"math/rand"
	"testing"

	"cbdc-sim/internal/model"
	"cbdc-sim/internal/scenario"
	"cbdc-sim/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrade_SeededNetworkIsDeterministic(t *testing.T) {
	cfg1 := scenario.Default()
	cfg2 := scenario.Default()

	sim.NewTradeSystem(cfg1, rand.New(rand.NewSource(42))).Update()
	sim.NewTradeSystem(cfg2, rand.New(rand.NewSource(42))).Update()

	assert.Equal(t, cfg1.InitialState.Exports, cfg2.InitialState.Exports)
	assert.Equal(t, cfg1.InitialState.Imports, cfg2.InitialState.Imports)
}

func TestTrade_FlowsScaleWithGDP(t *testing.T) {
	cfg := scenario.Default()
	sim.NewTradeSystem(cfg, rand.New(rand.NewSource(42))).Update()

	s := cfg.InitialState
	// Five partners, each seeded with flows between 5% and 15% of home GDP.
	// Imports additionally carry the tariff dampener.
	assert.Greater(t, s.Exports, 0.25*20000.0)
	assert.Less(t, s.Exports, 0.75*20000.0)
	assert.Greater(t, s.Imports, 0.25*20000.0*(1-0.05*0.5))
	assert.InDelta(t, s.Exports-s.Imports, s.NetExports, math.Abs(s.NetExports)*1e-9+1e-9)
}

func TestTrade_TariffRevenue(t *testing.T) {
	cfg := scenario.Default()
	taxBefore := cfg.InitialState.TaxRevenue

	sim.NewTradeSystem(cfg, rand.New(rand.NewSource(42))).Update()

	s := cfg.InitialState
	require.Greater(t, s.Extra["tariff_revenue"], 0.0)
	assert.InDelta(t, 0.05*s.Imports, s.Extra["tariff_revenue"], math.Abs(s.Imports)*1e-9)
	assert.InDelta(t, taxBefore+s.Extra["tariff_revenue"], s.TaxRevenue, 1e-9)
	assert.Equal(t, 0.05, s.Extra["effective_tariff_rate"])
}

func TestTrade_FixedRegimeSnapsToTarget(t *testing.T) {
	cfg := scenario.Default()
	cfg.Trade.Regime = model.RegimeFixed
	cfg.Trade.ExchangeRateTarget = 1.0
	cfg.InitialState.ExchangeRate = 1.2

	sim.NewTradeSystem(cfg, rand.New(rand.NewSource(42))).Update()

	s := cfg.InitialState
	assert.Equal(t, 1.0, s.ExchangeRate)
	// Defending the peg costs reserves proportional to the gap.
	assert.InDelta(t, -0.2*1000, s.ForeignReserves, 1e-9)
}

func TestTrade_ManagedRegimeStaysInBand(t *testing.T) {
	cfg := scenario.Default()
	cfg.Trade.Regime = model.RegimeManaged
	cfg.Trade.ExchangeRateTarget = 1.0
	cfg.Trade.InterventionThreshold = 0.1

	trade := sim.NewTradeSystem(cfg, rand.New(rand.NewSource(42)))
	for i := 0; i < 10; i++ {
		trade.Update()
		rate := cfg.InitialState.ExchangeRate
		assert.LessOrEqual(t, rate, 1.0+0.1+1e-9, "period %d", i)
		assert.GreaterOrEqual(t, rate, 1.0-0.1-1e-9, "period %d", i)
	}
}

func TestTrade_CapitalFlowControlsDampenMovement(t *testing.T) {
	free := scenario.Default()
	free.InitialState.InterestRate = 5.0 // strong appreciation pressure
	sim.NewTradeSystem(free, rand.New(rand.NewSource(42))).Update()

	controlled := scenario.Default()
	controlled.InitialState.InterestRate = 5.0
	controlled.Trade.CapitalFlowControls = 0.2
	sim.NewTradeSystem(controlled, rand.New(rand.NewSource(42))).Update()

	moveFree := math.Abs(free.InitialState.ExchangeRate - 1.0)
	moveControlled := math.Abs(controlled.InitialState.ExchangeRate - 1.0)
	assert.Less(t, moveControlled, moveFree)
}

func TestTrade_SettlementBoostsBothFlows(t *testing.T) {
	plain := scenario.Default()
	sim.NewTradeSystem(plain, rand.New(rand.NewSource(42))).Update()

	settled := scenario.Default()
	settled.Trade.Settlement = 1.0
	sim.NewTradeSystem(settled, rand.New(rand.NewSource(42))).Update()

	boost := 1 + 1.0*0.05*0.2
	assert.InDelta(t, plain.InitialState.Exports*boost, settled.InitialState.Exports, 1e-6)
	assert.InDelta(t, plain.InitialState.Imports*boost, settled.InitialState.Imports, 1e-6)
	assert.Equal(t, 0.05, settled.InitialState.Extra["cbdc_trade_efficiency"])
}

func TestTrade_CrossBorderLimitsRestrictCapitalAccount(t *testing.T) {
	cfg := scenario.Default()
	cfg.InitialState.CapitalAccount = 1000
	cfg.Trade.CrossBorderLimits = 0.5

	sim.NewTradeSystem(cfg, rand.New(rand.NewSource(42))).Update()

	assert.InDelta(t, 1000*(1-0.5*0.1), cfg.InitialState.CapitalAccount, 1e-9)
	assert.Equal(t, 0.05, cfg.InitialState.Extra["capital_flow_restriction"])
}
