package model

// Schedule maps a period index to named numeric adjustments. Shock entries
// are additive deltas, policy-change entries are replacing overrides. Entries
// keyed outside [0, horizon) never fire.
type Schedule map[int]map[string]float64

func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for t, entries := range s {
		m := make(map[string]float64, len(entries))
		for k, v := range entries {
			m[k] = v
		}
		out[t] = m
	}
	return out
}

// SimulationConfig composes everything a run needs: initial state, the four
// parameter sets, the time horizon in quarters, the random seed for the
// trade/banking network initialization, and the two schedules.
//
// The engine clones the configuration on construction, so one config value
// can seed any number of independent runs.
type SimulationConfig struct {
	Horizon       int
	Seed          int64
	SaveFrequency int

	InitialState *EconomicState

	Macro   *MacroParams
	CBDC    *CBDCParams
	Trade   *TradeParams
	Banking *BankingParams

	Shocks        Schedule
	PolicyChanges Schedule
}

// NewSimulationConfig returns a config with default parameter sets, a fresh
// zero state, an empty schedule pair and save frequency 1.
func NewSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		Horizon:       20,
		Seed:          42,
		SaveFrequency: 1,
		InitialState:  NewEconomicState(),
		Macro:         DefaultMacroParams(),
		CBDC:          DefaultCBDCParams(),
		Trade:         DefaultTradeParams(),
		Banking:       DefaultBankingParams(),
		Shocks:        make(Schedule),
		PolicyChanges: make(Schedule),
	}
}

// Clone deep-copies the configuration. Sector modules mutate state and
// parameters destructively, so anything shared between runs must be cloned
// first.
func (c *SimulationConfig) Clone() *SimulationConfig {
	return &SimulationConfig{
		Horizon:       c.Horizon,
		Seed:          c.Seed,
		SaveFrequency: c.SaveFrequency,
		InitialState:  c.InitialState.Clone(),
		Macro:         c.Macro.Clone(),
		CBDC:          c.CBDC.Clone(),
		Trade:         c.Trade.Clone(),
		Banking:       c.Banking.Clone(),
		Shocks:        c.Shocks.Clone(),
		PolicyChanges: c.PolicyChanges.Clone(),
	}
}
