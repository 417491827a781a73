package sim

import (
	"math"

	"cbdc-sim/internal/model"
)

// Extension keys written by the CBDC system.
const (
	keyMoneyVelocity          = "money_velocity"
	keyConstrainedConsumption = "constrained_consumption"
	keyUnconstrainedSpending  = "unconstrained_consumption"
	keyEffectiveCBDCRate      = "effective_cbdc_rate"
	keyFiscalTransfers        = "fiscal_transfers"
	keySmartContractLending   = "smart_contract_lending"
)

// CBDCSystem applies the programmable-money effects onto the shared state:
// validity-driven velocity, the constrained-spending split, tiered interest,
// automatic fiscal transfers and conditional smart-contract lending. Order
// is fixed.
type CBDCSystem struct {
	state  *model.EconomicState
	params *model.CBDCParams
	macro  *model.MacroParams
}

func NewCBDCSystem(cfg *model.SimulationConfig) *CBDCSystem {
	return &CBDCSystem{
		state:  cfg.InitialState,
		params: cfg.CBDC,
		macro:  cfg.Macro,
	}
}

func (c *CBDCSystem) Update() {
	c.applyValidityPeriod()
	c.applyConditionalSpending()
	c.applyTieredInterest()
	c.applyAutomaticTransfers()
	c.executeSmartContracts()
}

// applyValidityPeriod converts the programmable validity horizon into an
// effective money-velocity multiplier. Shorter validity means holders spend
// sooner; the 30-day floor keeps the multiplier bounded.
func (c *CBDCSystem) applyValidityPeriod() {
	validity := c.params.ValidityDays
	if validity < 365 {
		multiplier := 365 / math.Max(30, validity)
		c.state.Extra[keyMoneyVelocity] = 1 + (multiplier-1)*0.1
	} else {
		c.state.Extra[keyMoneyVelocity] = 1.0
	}
}

// applyConditionalSpending splits consumption into constrained and
// unconstrained parts for bookkeeping. The dampening itself is already part
// of the consumption function in the equilibrium solve.
func (c *CBDCSystem) applyConditionalSpending() {
	constrained := c.state.Consumption * c.params.SpendingConstraints
	c.state.Extra[keyConstrainedConsumption] = constrained
	c.state.Extra[keyUnconstrainedSpending] = c.state.Consumption - constrained
}

// applyTieredInterest records the weighted effective CBDC rate across
// holding tiers.
func (c *CBDCSystem) applyTieredInterest() {
	tierAdjustment := c.params.TieredRates["tier1"]
	c.state.Extra[keyEffectiveCBDCRate] = c.params.InterestRate + tierAdjustment*0.5
}

// applyAutomaticTransfers injects the per-period fiscal transfer into
// government spending.
func (c *CBDCSystem) applyAutomaticTransfers() {
	c.state.GovernmentSpending += c.params.AutomaticTransfers
	c.state.Extra[keyFiscalTransfers] = c.params.AutomaticTransfers
}

// executeSmartContracts runs the counter-cyclical lending contract: when
// unemployment exceeds its natural rate, lending scales with the gap and the
// lending-propensity parameter. The tracking entry only exists while the
// contract is deployed (parameter > 0).
func (c *CBDCSystem) executeSmartContracts() {
	if c.params.SmartContractLending <= 0 {
		return
	}
	gap := c.state.UnemploymentRate - c.macro.NaturalUnemployment
	if gap > 0 {
		c.state.Extra[keySmartContractLending] = gap * c.params.SmartContractLending * 10
	} else {
		c.state.Extra[keySmartContractLending] = 0.0
	}
}
