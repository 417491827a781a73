package sim

import (
	"fmt"
	"math/rand"

	"cbdc-sim/internal/model"
)

// Phase is the engine lifecycle state.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhaseCompleted
)

// Engine coordinates the four sector models over the configured horizon.
// Each period runs CBDC, banking and trade effects first, then the macro
// step that solves the period's equilibrium and derives the rest of the
// state. One engine runs once.
type Engine struct {
	cfg   *model.SimulationConfig
	state *model.EconomicState
	rng   *rand.Rand
	phase Phase

	macro   *MacroCore
	cbdc    *CBDCSystem
	trade   *TradeSystem
	banking *BankingSystem

	history History
}

// New builds an engine from a deep copy of cfg, so the caller's config is
// untouched by the run. The first history entry is the configured initial
// state, captured before the banking system replaces the balance-sheet
// figures with its own sizing.
func New(cfg *model.SimulationConfig) (*Engine, error) {
	if cfg.Horizon <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", cfg.Horizon)
	}
	if cfg.SaveFrequency <= 0 {
		return nil, fmt.Errorf("save frequency must be positive, got %d", cfg.SaveFrequency)
	}

	cfg = cfg.Clone()
	e := &Engine{
		cfg:   cfg,
		state: cfg.InitialState,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		phase: PhaseInitializing,
	}

	resolver := model.NewResolver(cfg.InitialState, cfg.Macro, cfg.CBDC, cfg.Trade, cfg.Banking)
	e.macro = NewMacroCore(cfg, resolver)
	e.history = append(e.history, e.state.Snapshot())

	// Construction order matters: trade then banking draw from the shared
	// random source, and banking overwrites the balance-sheet state.
	e.cbdc = NewCBDCSystem(cfg)
	e.trade = NewTradeSystem(cfg, e.rng)
	e.banking = NewBankingSystem(cfg, e.rng)

	return e, nil
}

// Run simulates the full horizon and returns the saved history. It errors if
// called more than once.
func (e *Engine) Run() (*Result, error) {
	if e.phase != PhaseInitializing {
		return nil, fmt.Errorf("engine already ran")
	}
	e.phase = PhaseRunning

	for t := 0; t < e.cfg.Horizon; t++ {
		e.cbdc.Update()
		e.banking.Update()
		e.trade.Update()
		e.macro.Step(t)

		if t%e.cfg.SaveFrequency == 0 {
			e.history = append(e.history, e.state.Snapshot())
		}
	}

	e.phase = PhaseCompleted
	return &Result{History: e.history, Periods: e.cfg.Horizon}, nil
}

// State exposes the live economic state, mainly for inspection after a run.
func (e *Engine) State() *model.EconomicState { return e.state }

// Phase reports where the engine is in its lifecycle.
func (e *Engine) Phase() Phase { return e.phase }
