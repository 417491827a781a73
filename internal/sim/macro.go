package sim

import (
	"math"
	"sort"

	"cbdc-sim/internal/model"
)

// fallbackGrowth is the deterministic per-period growth factor applied to
// output and the price level when the equilibrium solver fails. Kept small
// so a non-converging run still produces a plausible drift.
const fallbackGrowth = 0.005

// MacroCore owns the per-period macro step: schedule application, the
// equilibrium solve, and the derivation of all dependent variables from the
// solved (output, interest rate, exchange rate, price level) quadruple.
type MacroCore struct {
	state    *model.EconomicState
	macro    *model.MacroParams
	cbdc     *model.CBDCParams
	trade    *model.TradeParams
	banking  *model.BankingParams
	resolver *model.Resolver
	solver   *EquilibriumSolver

	shocks        model.Schedule
	policyChanges model.Schedule

	// prevGDP is output as of the end of the previous period, used for the
	// adaptive growth-expectation update.
	prevGDP float64
}

func NewMacroCore(cfg *model.SimulationConfig, resolver *model.Resolver) *MacroCore {
	return &MacroCore{
		state:         cfg.InitialState,
		macro:         cfg.Macro,
		cbdc:          cfg.CBDC,
		trade:         cfg.Trade,
		banking:       cfg.Banking,
		resolver:      resolver,
		solver:        NewEquilibriumSolver(),
		shocks:        cfg.Shocks,
		policyChanges: cfg.PolicyChanges,
		prevGDP:       cfg.InitialState.GDP,
	}
}

// Step advances the macro core by one period: shocks, policy changes,
// equilibrium solve, dependent-variable derivation.
func (m *MacroCore) Step(t int) {
	m.applySchedule(m.shocks[t], m.resolver.AddTo)
	m.applySchedule(m.policyChanges[t], m.resolver.Set)
	m.solveEquilibrium()
	m.derive()
	m.prevGDP = m.state.GDP
}

// applySchedule applies one period's entries in name order so runs are
// reproducible regardless of map iteration order. Unresolvable names drop.
func (m *MacroCore) applySchedule(entries map[string]float64, apply func(string, float64) bool) {
	if len(entries) == 0 {
		return
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		apply(name, entries[name])
	}
}

// solveEquilibrium runs the Newton solve seeded from the previous period's
// values. On failure the period degrades to a fixed small growth step;
// non-convergence is never fatal.
func (m *MacroCore) solveEquilibrium() {
	s := m.state
	guess := [4]float64{s.GDP, s.InterestRate, s.ExchangeRate, s.PriceLevel}

	sol, ok := m.solver.Solve(m.residuals(), guess)
	if !ok {
		s.GDP *= 1 + fallbackGrowth
		s.PriceLevel *= 1 + fallbackGrowth
		return
	}

	s.GDP = sol[0]
	s.InterestRate = sol[1]
	s.ExchangeRate = sol[2]
	s.PriceLevel = sol[3]
}

// residuals builds the four market-clearing conditions for the current
// period. Exogenous inputs (fiscal stance, net exports, money supply, prior
// price level) are captured at call time, so the closure is pure in the
// solver's candidate point.
func (m *MacroCore) residuals() ResidualFunc {
	c0 := m.macro.AutonomousConsumption
	mpc := m.macro.MarginalPropensityToConsume
	i0 := m.macro.AutonomousInvestment
	b := m.macro.InvestmentInterestSensitivity
	k := m.macro.MoneyDemandIncomeSensitivity
	h := m.macro.MoneyDemandInterestSensitivity

	g := m.state.GovernmentSpending
	tax := m.state.TaxRevenue
	nx0 := m.state.NetExports
	money := m.state.MoneySupply
	potential := m.state.PotentialGDP
	priorPrice := m.state.PriceLevel

	spendingConstraint := m.cbdc.SpendingConstraints
	smartLending := m.cbdc.SmartContractLending
	forexControls := m.cbdc.ForexControls

	return func(v [4]float64) [4]float64 {
		y, r, e, p := v[0], v[1], v[2], v[3]

		consumption := c0 + mpc*(y-tax)*(1-spendingConstraint)
		investment := i0 - b*r + smartLending*100
		netExports := nx0 - 0.2*y - forexControls*50 + 0.1*(e-1)*y
		moneyDemand := k*y - h*r

		return [4]float64{
			y - (consumption + investment + g + netExports), // goods market (IS)
			money/p - moneyDemand,                           // money market (LM)
			netExports - (r-0.02)*1000,                      // external balance (BP)
			p - (y/potential)*priorPrice,                    // price adjustment
		}
	}
}

// derive updates every dependent variable from the freshly solved quadruple.
// Order matters: several updates feed later ones within the same period.
func (m *MacroCore) derive() {
	s := m.state
	y, r, e := s.GDP, s.InterestRate, s.ExchangeRate

	// Okun's law: unemployment deviates from its natural rate with the
	// output gap. The raw value feeds the Phillips curve; the stored rate
	// is floored at zero.
	outputGap := (y - s.PotentialGDP) / s.PotentialGDP
	u := m.macro.NaturalUnemployment - m.macro.OkunLawCoefficient*outputGap*100
	s.UnemploymentRate = math.Max(0, u)

	// Phillips curve with adaptive expectations and the CBDC
	// inflation-indexed-instrument dampener.
	prevInflation := s.InflationRate
	inflation := prevInflation*0.5 + s.InflationExpectations*0.5 -
		m.macro.PhillipsCurveSensitivity*(u-m.macro.NaturalUnemployment)
	inflation -= m.cbdc.InflationIndexed * 0.1
	s.InflationRate = inflation

	w := m.macro.AdaptiveExpectationsWeight
	s.InflationExpectations = w*prevInflation + (1-w)*inflation

	// Taylor rule with the CBDC emergency override, floored at zero.
	inflationGap := inflation - 2.0
	policyRate := m.macro.NeutralInterestRate +
		m.macro.TaylorRuleInflation*inflationGap +
		m.macro.TaylorRuleOutput*outputGap*100 +
		m.cbdc.EmergencyOverride
	s.PolicyRate = math.Max(0, policyRate)

	// Banking rates as fixed spreads off the policy rate.
	s.LoanInterestRate = s.PolicyRate + 2.0
	s.DepositInterestRate = s.PolicyRate - 1.0
	s.InterbankRate = s.PolicyRate + 0.1

	// CBDC-driven deposit disintermediation.
	disintermediation := m.cbdc.InterestRate * m.banking.DisintermediationFactor
	s.BankDeposits *= 1 - disintermediation

	// Simple output- and exchange-rate-elastic trade flows, with tariff
	// revenue collected and imports dampened by tariffs.
	s.Exports = 0.2 * y * e
	s.Imports = 0.25 * y / e
	tariffRevenue := m.trade.TariffRate * s.Imports
	s.Imports *= 1 - m.trade.TariffRate*0.5
	s.TaxRevenue += tariffRevenue
	s.NetExports = s.Exports - s.Imports
	s.CurrentAccount = s.NetExports
	s.CapitalAccount = -s.CurrentAccount

	// Consumption and investment consistent with the solver's formulas.
	s.Consumption = m.macro.AutonomousConsumption +
		m.macro.MarginalPropensityToConsume*(y-s.TaxRevenue)*(1-m.cbdc.SpendingConstraints)
	s.Investment = m.macro.AutonomousInvestment -
		m.macro.InvestmentInterestSensitivity*r + m.cbdc.SmartContractLending*100

	// Financial stress blends debt burden, unemployment and the inflation
	// gap. The banking system overwrites this later in the next period with
	// its own stability-based figure.
	s.FinancialStressIndex = 0.3*(s.GovernmentDebt/y) +
		0.3*(s.UnemploymentRate/10) +
		0.4*(math.Abs(s.InflationRate-2)/2)

	// Potential output grows at the configured quarterly rate.
	s.PotentialGDP *= 1 + m.macro.PotentialOutputGrowth/4

	// Fiscal accumulation.
	s.BudgetDeficit = s.GovernmentSpending - s.TaxRevenue
	s.GovernmentDebt += s.BudgetDeficit

	// CBDC supply grows with programmable asset purchases; money supply is
	// deposits net of required reserves plus CBDC.
	s.CBDCSupply *= 1 + m.cbdc.AssetPurchases/1000
	s.MoneySupply = s.BankDeposits*(1-m.banking.ReserveRequirement) + s.CBDCSupply

	// Adaptive growth expectations off realized output growth.
	actualGrowth := 0.0
	if m.prevGDP != 0 {
		actualGrowth = y/m.prevGDP - 1
	}
	s.GrowthExpectations = w*s.GrowthExpectations + (1-w)*actualGrowth
}
