// Package config loads simulation configurations from YAML. A file selects a
// base scenario and overlays initial-state values, parameter overrides and
// schedules on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"cbdc-sim/internal/model"
	"cbdc-sim/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every section is
// optional; an empty file means the default scenario as-is.
type Config struct {
	// Scenario names the built-in base configuration. Empty means "default".
	Scenario string `yaml:"scenario"`

	Horizon       int   `yaml:"horizon"`
	Seed          int64 `yaml:"seed"`
	SaveFrequency int   `yaml:"save_frequency"`

	ExchangeRateRegime string `yaml:"exchange_rate_regime"`

	InitialState      map[string]float64 `yaml:"initial_state"`
	MacroParameters   map[string]float64 `yaml:"macro_parameters"`
	CBDCParameters    map[string]float64 `yaml:"cbdc_parameters"`
	TradeParameters   map[string]float64 `yaml:"trade_parameters"`
	BankingParameters map[string]float64 `yaml:"banking_parameters"`

	Shocks        map[int]map[string]float64 `yaml:"shocks"`
	PolicyChanges map[int]map[string]float64 `yaml:"policy_changes"`
}

func Load(path string) (*model.SimulationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes YAML and builds the full simulation configuration.
func Parse(raw []byte) (*model.SimulationConfig, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.ToSimulationConfig()
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must not be negative, got %d", c.Horizon)
	}
	if c.SaveFrequency < 0 {
		return fmt.Errorf("save_frequency must not be negative, got %d", c.SaveFrequency)
	}
	switch c.ExchangeRateRegime {
	case "", string(model.RegimeFloating), string(model.RegimeManaged), string(model.RegimeFixed):
	default:
		return fmt.Errorf("unknown exchange_rate_regime %q", c.ExchangeRateRegime)
	}
	return nil
}

// ToSimulationConfig overlays the file's sections onto the base scenario.
// Zero-valued top-level fields keep the scenario's values, so a file can
// override just a seed or just a schedule.
func (c *Config) ToSimulationConfig() (*model.SimulationConfig, error) {
	name := c.Scenario
	if name == "" {
		name = "default"
	}
	cfg, err := scenario.ByName(name)
	if err != nil {
		return nil, err
	}

	if c.Horizon > 0 {
		cfg.Horizon = c.Horizon
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.SaveFrequency > 0 {
		cfg.SaveFrequency = c.SaveFrequency
	}
	if c.ExchangeRateRegime != "" {
		cfg.Trade.Regime = model.ExchangeRateRegime(c.ExchangeRateRegime)
	}

	// State overrides go to the fixed schema when the name matches, and to
	// the extension map otherwise.
	for _, key := range sortedKeys(c.InitialState) {
		if !cfg.InitialState.Set(key, c.InitialState[key]) {
			cfg.InitialState.Extra[key] = c.InitialState[key]
		}
	}

	if err := applyParams("macro_parameters", c.MacroParameters, cfg.Macro.FieldMap()); err != nil {
		return nil, err
	}
	if err := applyParams("cbdc_parameters", c.CBDCParameters, cfg.CBDC.FieldMap()); err != nil {
		return nil, err
	}
	if err := applyParams("trade_parameters", c.TradeParameters, cfg.Trade.FieldMap()); err != nil {
		return nil, err
	}
	if err := applyParams("banking_parameters", c.BankingParameters, cfg.Banking.FieldMap()); err != nil {
		return nil, err
	}

	if c.Shocks != nil {
		cfg.Shocks = model.Schedule(c.Shocks).Clone()
	}
	if c.PolicyChanges != nil {
		cfg.PolicyChanges = model.Schedule(c.PolicyChanges).Clone()
	}

	return cfg, nil
}

// applyParams writes overrides through a parameter set's field map. A key
// the set does not know is a config mistake, not something to drop quietly.
func applyParams(section string, values map[string]float64, fields map[string]*float64) error {
	for _, key := range sortedKeys(values) {
		p, ok := fields[key]
		if !ok {
			return fmt.Errorf("%s: unknown parameter %q", section, key)
		}
		*p = values[key]
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
