package sim

import (
	"math"
	"math/rand"

	"cbdc-sim/internal/model"
)

// Extension keys written by the trade system.
const (
	keyPrevGDP              = "prev_gdp"
	keyPrevExchangeRate     = "prev_exchange_rate"
	keyTariffRevenue        = "tariff_revenue"
	keyEffectiveTariffRate  = "effective_tariff_rate"
	keyCBDCTradeEfficiency  = "cbdc_trade_efficiency"
	keyCapitalFlowRestraint = "capital_flow_restriction"
)

// tradePartners is the fixed set of counterparties in the bilateral network.
var tradePartners = []string{"USA", "EU", "China", "Japan", "UK"}

// partnerLink holds both directed flows against one counterparty. No graph
// algorithms run on the network, only local iteration and aggregation, so an
// adjacency map keyed by partner name is all the structure needed.
type partnerLink struct {
	GDP     float64
	PrevGDP float64
	Export  float64
	Import  float64
}

// TradeSystem maintains the bilateral trade network, updates flows with a
// gravity-style rule, collects tariffs, determines the exchange rate under
// the configured regime and applies CBDC cross-border effects.
type TradeSystem struct {
	state  *model.EconomicState
	params *model.TradeParams

	links map[string]*partnerLink
}

// NewTradeSystem seeds the network from the simulation's random source:
// partner GDPs between 0.5 and 2 times home GDP, initial flows between 5%
// and 15% of home GDP. The draws are the only randomness in the engine.
func NewTradeSystem(cfg *model.SimulationConfig, rng *rand.Rand) *TradeSystem {
	t := &TradeSystem{
		state:  cfg.InitialState,
		params: cfg.Trade,
		links:  make(map[string]*partnerLink, len(tradePartners)),
	}
	home := cfg.InitialState.GDP
	for _, name := range tradePartners {
		gdp := (0.5 + 1.5*rng.Float64()) * home
		export := (0.05 + 0.10*rng.Float64()) * home
		imprt := (0.05 + 0.10*rng.Float64()) * home
		t.links[name] = &partnerLink{GDP: gdp, PrevGDP: gdp, Export: export, Import: imprt}
	}
	return t
}

func (t *TradeSystem) Update() {
	t.updateFlows()
	t.applyTariffs()
	t.updateExchangeRate()
	t.applyCBDCEffects()
}

// updateFlows applies the gravity-style multiplicative rule to every edge
// and aggregates the network into the scalar trade variables.
func (t *TradeSystem) updateFlows() {
	s := t.state
	homeGDP := s.GDP
	rate := s.ExchangeRate

	prevHome := extraOr(s, keyPrevGDP, homeGDP)
	prevRate := extraOr(s, keyPrevExchangeRate, 1.0)

	totalExports, totalImports := 0.0, 0.0
	for _, name := range tradePartners {
		link := t.links[name]

		// Exports scale with foreign growth and currency depreciation.
		foreignGrowth := link.GDP/link.PrevGDP - 1
		link.Export *= (1 + 0.8*foreignGrowth) * (1 + 0.5*(1-rate/prevRate))

		// Imports scale with home growth and currency appreciation, and
		// tariffs dampen them.
		homeGrowth := homeGDP/prevHome - 1
		link.Import *= (1 + 0.8*homeGrowth) * (1 + 0.5*(rate/prevRate-1))
		link.Import *= 1 - t.params.TariffRate*0.5

		link.PrevGDP = link.GDP
		totalExports += link.Export
		totalImports += link.Import
	}

	s.Extra[keyPrevGDP] = homeGDP
	s.Extra[keyPrevExchangeRate] = rate

	s.Exports = totalExports
	s.Imports = totalImports
	s.NetExports = totalExports - totalImports
}

func (t *TradeSystem) applyTariffs() {
	revenue := t.params.TariffRate * t.state.Imports
	t.state.TaxRevenue += revenue
	t.state.Extra[keyTariffRevenue] = revenue
	t.state.Extra[keyEffectiveTariffRate] = t.params.TariffRate
}

// updateExchangeRate determines the next rate under the configured regime.
// Fixed snaps to target and draws down reserves by the gap; managed lets the
// market-implied rate move inside a band around the target and intervenes at
// the edge; floating is pure market movement, dampened under capital-flow
// controls.
func (t *TradeSystem) updateExchangeRate() {
	s := t.state
	current := s.ExchangeRate

	switch t.params.Regime {
	case model.RegimeFixed:
		target := t.params.ExchangeRateTarget
		s.ExchangeRate = target
		s.ForeignReserves -= math.Abs(current-target) * 1000

	case model.RegimeManaged:
		target := t.params.ExchangeRateTarget
		threshold := t.params.InterventionThreshold
		market := t.marketRate(current)
		if math.Abs(market-target) > threshold {
			direction := 1.0
			if market < target {
				direction = -1.0
			}
			intervened := target + direction*threshold
			s.ExchangeRate = intervened
			s.ForeignReserves -= math.Abs(market-intervened) * 500
		} else {
			s.ExchangeRate = market
		}

	default: // floating
		market := t.marketRate(current)
		if t.params.CapitalFlowControls > 0 {
			dampening := t.params.CapitalFlowControls
			market = current*(1-dampening) + market*dampening
		}
		s.ExchangeRate = market
	}
}

// marketRate is the market-implied movement: the rate appreciates with the
// interest differential over the assumed 2% foreign rate and depreciates
// with a trade deficit.
func (t *TradeSystem) marketRate(current float64) float64 {
	interestDifferential := t.state.InterestRate - 2.0
	tradeBalance := t.state.NetExports / t.state.GDP
	return current * (1 - 0.2*interestDifferential + 0.3*tradeBalance)
}

// applyCBDCEffects applies settlement-driven trade-cost reductions and
// cross-border CBDC limits.
func (t *TradeSystem) applyCBDCEffects() {
	s := t.state

	if t.params.Settlement > 0 {
		costReduction := t.params.Settlement * 0.05
		boost := costReduction * 0.2
		s.Exports *= 1 + boost
		s.Imports *= 1 + boost
		s.Extra[keyCBDCTradeEfficiency] = costReduction
	}

	if t.params.CrossBorderLimits > 0 {
		flowReduction := t.params.CrossBorderLimits * 0.1
		s.CapitalAccount *= 1 - flowReduction
		s.Extra[keyCapitalFlowRestraint] = flowReduction
	}
}

// extraOr reads an extension entry, defaulting when the key has not been
// written yet (first period).
func extraOr(s *model.EconomicState, key string, def float64) float64 {
	if v, ok := s.Extra[key]; ok {
		return v
	}
	return def
}
