package model

// EconomicState is the container for all economic quantities at one point in
// time. Exactly one live instance exists per simulation run; every sector
// module mutates it in place during a period and the engine snapshots it at
// the end of each period.
//
// Units follow the reference calibration: output-side aggregates in billions
// of domestic currency, rates in percentage points, price/wage/asset levels
// as indices around 1.0.
type EconomicState struct {
	// Macroeconomic indicators
	GDP              float64
	PotentialGDP     float64
	InflationRate    float64
	UnemploymentRate float64
	InterestRate     float64
	PolicyRate       float64
	ExchangeRate     float64

	// Fiscal variables
	GovernmentSpending float64
	TaxRevenue         float64
	GovernmentDebt     float64
	BudgetDeficit      float64

	// Monetary variables
	MoneySupply  float64
	CBDCSupply   float64
	BankReserves float64

	// Sectoral variables
	Consumption float64
	Investment  float64
	NetExports  float64

	// International variables
	Exports         float64
	Imports         float64
	CurrentAccount  float64
	CapitalAccount  float64
	ForeignReserves float64

	// Banking sector
	BankLoans           float64
	BankDeposits        float64
	InterbankRate       float64
	LoanInterestRate    float64
	DepositInterestRate float64

	// Price variables
	PriceLevel  float64
	WageLevel   float64
	AssetPrices float64

	// Expectation variables
	InflationExpectations float64
	GrowthExpectations    float64

	// Financial stability indicators
	FinancialStressIndex  float64
	SystemicRiskIndicator float64

	// Extra holds ad hoc variables that are not part of the fixed schema.
	// Sector modules use it for bookkeeping (prev_* values, regulatory
	// ratios, CBDC tracking entries) and schedules can target its keys.
	Extra map[string]float64
}

// NewEconomicState returns a state with the index variables at their neutral
// level (1.0) and everything else zero.
func NewEconomicState() *EconomicState {
	return &EconomicState{
		ExchangeRate: 1.0,
		PriceLevel:   1.0,
		WageLevel:    1.0,
		AssetPrices:  1.0,
		Extra:        make(map[string]float64),
	}
}

// stateFieldOrder is the canonical order of the fixed schema, used for
// snapshots and CSV columns. It must cover every field in fieldMap.
var stateFieldOrder = []string{
	"gdp",
	"potential_gdp",
	"inflation_rate",
	"unemployment_rate",
	"interest_rate",
	"policy_rate",
	"exchange_rate",
	"government_spending",
	"tax_revenue",
	"government_debt",
	"budget_deficit",
	"money_supply",
	"cbdc_supply",
	"bank_reserves",
	"consumption",
	"investment",
	"net_exports",
	"exports",
	"imports",
	"current_account",
	"capital_account",
	"foreign_reserves",
	"bank_loans",
	"bank_deposits",
	"interbank_rate",
	"loan_interest_rate",
	"deposit_interest_rate",
	"price_level",
	"wage_level",
	"asset_prices",
	"inflation_expectations",
	"growth_expectations",
	"financial_stress_index",
	"systemic_risk_indicator",
}

// StateFieldNames returns the canonical snapshot ordering of the fixed
// schema fields.
func StateFieldNames() []string {
	out := make([]string, len(stateFieldOrder))
	copy(out, stateFieldOrder)
	return out
}

// fieldMap maps snapshot names to the backing fields. The pointers stay
// valid for the lifetime of the state, so the map can be built once and
// reused by the registry.
func (s *EconomicState) fieldMap() map[string]*float64 {
	return map[string]*float64{
		"gdp":                     &s.GDP,
		"potential_gdp":           &s.PotentialGDP,
		"inflation_rate":          &s.InflationRate,
		"unemployment_rate":       &s.UnemploymentRate,
		"interest_rate":           &s.InterestRate,
		"policy_rate":             &s.PolicyRate,
		"exchange_rate":           &s.ExchangeRate,
		"government_spending":     &s.GovernmentSpending,
		"tax_revenue":             &s.TaxRevenue,
		"government_debt":         &s.GovernmentDebt,
		"budget_deficit":          &s.BudgetDeficit,
		"money_supply":            &s.MoneySupply,
		"cbdc_supply":             &s.CBDCSupply,
		"bank_reserves":           &s.BankReserves,
		"consumption":             &s.Consumption,
		"investment":              &s.Investment,
		"net_exports":             &s.NetExports,
		"exports":                 &s.Exports,
		"imports":                 &s.Imports,
		"current_account":         &s.CurrentAccount,
		"capital_account":         &s.CapitalAccount,
		"foreign_reserves":        &s.ForeignReserves,
		"bank_loans":              &s.BankLoans,
		"bank_deposits":           &s.BankDeposits,
		"interbank_rate":          &s.InterbankRate,
		"loan_interest_rate":      &s.LoanInterestRate,
		"deposit_interest_rate":   &s.DepositInterestRate,
		"price_level":             &s.PriceLevel,
		"wage_level":              &s.WageLevel,
		"asset_prices":            &s.AssetPrices,
		"inflation_expectations":  &s.InflationExpectations,
		"growth_expectations":     &s.GrowthExpectations,
		"financial_stress_index":  &s.FinancialStressIndex,
		"systemic_risk_indicator": &s.SystemicRiskIndicator,
	}
}

// Set assigns a fixed-schema field by snapshot name. It returns false when
// the name is not part of the schema.
func (s *EconomicState) Set(name string, value float64) bool {
	if p, ok := s.fieldMap()[name]; ok {
		*p = value
		return true
	}
	return false
}

// Snapshot flattens the state into a name-to-value mapping: the fixed schema
// fields plus every extension entry.
func (s *EconomicState) Snapshot() map[string]float64 {
	fields := s.fieldMap()
	out := make(map[string]float64, len(fields)+len(s.Extra))
	for name, p := range fields {
		out[name] = *p
	}
	for name, v := range s.Extra {
		out[name] = v
	}
	return out
}

// Clone returns a deep copy, including the extension map.
func (s *EconomicState) Clone() *EconomicState {
	out := *s
	out.Extra = make(map[string]float64, len(s.Extra))
	for k, v := range s.Extra {
		out.Extra[k] = v
	}
	return &out
}
