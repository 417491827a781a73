package model

// The four parameter sets are independent bundles of policy/behavioral
// coefficients. They are immutable during a period except when a scheduled
// policy change rewrites a field through the registry. Defaults follow the
// reference calibration.

// MacroParams holds the IS-LM-BP, Phillips/Okun and policy-rule coefficients.
type MacroParams struct {
	// IS-LM coefficients
	AutonomousConsumption          float64
	MarginalPropensityToConsume    float64
	AutonomousInvestment           float64
	InvestmentInterestSensitivity  float64
	MoneyDemandIncomeSensitivity   float64
	MoneyDemandInterestSensitivity float64

	// Phillips curve and Okun's law
	PhillipsCurveSensitivity float64
	OkunLawCoefficient       float64

	// Growth model
	ProductivityGrowth  float64
	CapitalDepreciation float64
	CapitalOutputRatio  float64

	// International elasticities
	ExportIncomeElasticity float64
	ImportIncomeElasticity float64
	ExportPriceElasticity  float64
	ImportPriceElasticity  float64

	// Policy rule
	TaylorRuleInflation float64
	TaylorRuleOutput    float64

	// Structural
	NaturalUnemployment   float64
	PotentialOutputGrowth float64
	NeutralInterestRate   float64

	// Expectation formation
	AdaptiveExpectationsWeight float64

	Extra map[string]float64
}

// DefaultMacroParams returns the reference calibration.
func DefaultMacroParams() *MacroParams {
	return &MacroParams{
		AutonomousConsumption:          1500.0,
		MarginalPropensityToConsume:    0.6,
		AutonomousInvestment:           2000.0,
		InvestmentInterestSensitivity:  100.0,
		MoneyDemandIncomeSensitivity:   0.2,
		MoneyDemandInterestSensitivity: 50.0,
		PhillipsCurveSensitivity:       0.5,
		OkunLawCoefficient:             0.5,
		ProductivityGrowth:             0.02,
		CapitalDepreciation:            0.1,
		CapitalOutputRatio:             3.0,
		ExportIncomeElasticity:         1.0,
		ImportIncomeElasticity:         1.0,
		ExportPriceElasticity:          1.5,
		ImportPriceElasticity:          1.5,
		TaylorRuleInflation:            1.5,
		TaylorRuleOutput:               0.5,
		NaturalUnemployment:            4.0,
		PotentialOutputGrowth:          0.025,
		NeutralInterestRate:            2.5,
		AdaptiveExpectationsWeight:     0.7,
		Extra:                          make(map[string]float64),
	}
}

func (p *MacroParams) FieldMap() map[string]*float64 {
	return map[string]*float64{
		"autonomous_consumption":            &p.AutonomousConsumption,
		"marginal_propensity_to_consume":    &p.MarginalPropensityToConsume,
		"autonomous_investment":             &p.AutonomousInvestment,
		"investment_interest_sensitivity":   &p.InvestmentInterestSensitivity,
		"money_demand_income_sensitivity":   &p.MoneyDemandIncomeSensitivity,
		"money_demand_interest_sensitivity": &p.MoneyDemandInterestSensitivity,
		"phillips_curve_sensitivity":        &p.PhillipsCurveSensitivity,
		"okun_law_coefficient":              &p.OkunLawCoefficient,
		"productivity_growth":               &p.ProductivityGrowth,
		"capital_depreciation":              &p.CapitalDepreciation,
		"capital_output_ratio":              &p.CapitalOutputRatio,
		"export_income_elasticity":          &p.ExportIncomeElasticity,
		"import_income_elasticity":          &p.ImportIncomeElasticity,
		"export_price_elasticity":           &p.ExportPriceElasticity,
		"import_price_elasticity":           &p.ImportPriceElasticity,
		"taylor_rule_inflation":             &p.TaylorRuleInflation,
		"taylor_rule_output":                &p.TaylorRuleOutput,
		"natural_unemployment":              &p.NaturalUnemployment,
		"potential_output_growth":           &p.PotentialOutputGrowth,
		"neutral_interest_rate":             &p.NeutralInterestRate,
		"adaptive_expectations_weight":      &p.AdaptiveExpectationsWeight,
	}
}

func (p *MacroParams) Clone() *MacroParams {
	out := *p
	out.Extra = cloneFloatMap(p.Extra)
	return &out
}

// CBDCParams controls the programmable-money features of the CBDC.
// Rates are percentage points, the 0-1 scales are fractions, validity is in
// days.
type CBDCParams struct {
	InterestRate float64
	TieredRates  map[string]float64
	ValidityDays float64

	// Spending controls
	SpendingConstraints float64

	// Fiscal integration
	AutomaticTransfers float64
	DynamicTaxation    float64

	// Financial system controls
	SmartContractLending float64
	ForexControls        float64
	CapitalControls      float64

	// Behavioral and regulatory
	BehavioralIncentives float64
	ComplianceReporting  float64
	PrivacySettings      float64

	// Stability tools
	MacroprudentialTools float64
	EmergencyOverride    float64

	// Financial instruments
	InflationIndexed float64
	AssetPurchases   float64
	Derivatives      float64

	Interoperability float64

	Extra map[string]float64
}

// DefaultCBDCParams returns a CBDC with every policy lever off: a plain
// digital currency with a one-year validity and no programmability.
func DefaultCBDCParams() *CBDCParams {
	return &CBDCParams{
		ValidityDays:     365,
		PrivacySettings:  1.0,
		Interoperability: 1.0,
		TieredRates:      make(map[string]float64),
		Extra:            make(map[string]float64),
	}
}

func (p *CBDCParams) FieldMap() map[string]*float64 {
	return map[string]*float64{
		"cbdc_interest_rate":               &p.InterestRate,
		"programmable_money_validity":      &p.ValidityDays,
		"conditional_spending_constraints": &p.SpendingConstraints,
		"automatic_fiscal_transfers":       &p.AutomaticTransfers,
		"dynamic_taxation_policies":        &p.DynamicTaxation,
		"smart_contract_based_lending":     &p.SmartContractLending,
		"foreign_exchange_controls":        &p.ForexControls,
		"capital_controls":                 &p.CapitalControls,
		"behavioral_economics_incentives":  &p.BehavioralIncentives,
		"automated_compliance_reporting":   &p.ComplianceReporting,
		"privacy_settings":                 &p.PrivacySettings,
		"macroprudential_tools":            &p.MacroprudentialTools,
		"emergency_override_mechanisms":    &p.EmergencyOverride,
		"inflation_indexed_instruments":    &p.InflationIndexed,
		"programmable_asset_purchases":     &p.AssetPurchases,
		"cbdc_derivatives":                 &p.Derivatives,
		"interoperability_protocols":       &p.Interoperability,
	}
}

func (p *CBDCParams) Clone() *CBDCParams {
	out := *p
	out.TieredRates = cloneFloatMap(p.TieredRates)
	out.Extra = cloneFloatMap(p.Extra)
	return &out
}

// ExchangeRateRegime selects how the trade system determines the next
// exchange rate.
type ExchangeRateRegime string

const (
	RegimeFloating ExchangeRateRegime = "floating"
	RegimeManaged  ExchangeRateRegime = "managed"
	RegimeFixed    ExchangeRateRegime = "fixed"
)

// TradeParams controls international trade, tariffs and the exchange-rate
// regime.
type TradeParams struct {
	TariffRate        float64
	NonTariffBarriers float64
	CustomsEfficiency float64

	Regime                ExchangeRateRegime
	ExchangeRateTarget    float64
	InterventionThreshold float64

	CapitalFlowControls           float64
	ForeignInvestmentRestrictions float64

	// CBDC trade features
	Settlement        float64
	CrossBorderLimits float64

	Extra map[string]float64
}

func DefaultTradeParams() *TradeParams {
	return &TradeParams{
		CustomsEfficiency:     1.0,
		Regime:                RegimeFloating,
		ExchangeRateTarget:    1.0,
		InterventionThreshold: 0.1,
		Extra:                 make(map[string]float64),
	}
}

func (p *TradeParams) FieldMap() map[string]*float64 {
	return map[string]*float64{
		"tariff_rate":                     &p.TariffRate,
		"non_tariff_barriers":             &p.NonTariffBarriers,
		"customs_efficiency":              &p.CustomsEfficiency,
		"exchange_rate_target":            &p.ExchangeRateTarget,
		"intervention_threshold":          &p.InterventionThreshold,
		"capital_flow_controls":           &p.CapitalFlowControls,
		"foreign_investment_restrictions": &p.ForeignInvestmentRestrictions,
		"cbdc_trade_settlement":           &p.Settlement,
		"cross_border_cbdc_limits":        &p.CrossBorderLimits,
	}
}

func (p *TradeParams) Clone() *TradeParams {
	out := *p
	out.Extra = cloneFloatMap(p.Extra)
	return &out
}

// BankingParams controls the banking sector, regulation and central-bank
// operations.
type BankingParams struct {
	// Regulatory
	CapitalRequirement     float64
	ReserveRequirement     float64
	LiquidityCoverageRatio float64

	// Behavior
	LendingRiskAppetite     float64
	InterbankMarketActivity float64

	// Central bank operations
	DiscountRate           float64
	StandingFacilitySpread float64
	QuantitativeEasing     float64

	// Financial market
	MarketLiquidity float64
	RiskPremium     float64
	TermPremium     float64

	// CBDC impacts
	DisintermediationFactor float64
	DistributionRole        float64

	// Stability tools
	CountercyclicalBuffer float64
	SystemicRiskCharge    float64

	Extra map[string]float64
}

func DefaultBankingParams() *BankingParams {
	return &BankingParams{
		CapitalRequirement:      0.08,
		ReserveRequirement:      0.02,
		LiquidityCoverageRatio:  1.0,
		LendingRiskAppetite:     0.5,
		InterbankMarketActivity: 1.0,
		DiscountRate:            0.05,
		StandingFacilitySpread:  0.01,
		MarketLiquidity:         1.0,
		RiskPremium:             0.02,
		TermPremium:             0.01,
		DistributionRole:        1.0,
		Extra:                   make(map[string]float64),
	}
}

func (p *BankingParams) FieldMap() map[string]*float64 {
	return map[string]*float64{
		"capital_requirement":           &p.CapitalRequirement,
		"reserve_requirement":           &p.ReserveRequirement,
		"liquidity_coverage_ratio":      &p.LiquidityCoverageRatio,
		"lending_risk_appetite":         &p.LendingRiskAppetite,
		"interbank_market_activity":     &p.InterbankMarketActivity,
		"discount_rate":                 &p.DiscountRate,
		"standing_facility_spread":      &p.StandingFacilitySpread,
		"quantitative_easing":           &p.QuantitativeEasing,
		"market_liquidity":              &p.MarketLiquidity,
		"risk_premium":                  &p.RiskPremium,
		"term_premium":                  &p.TermPremium,
		"cbdc_disintermediation_factor": &p.DisintermediationFactor,
		"bank_cbdc_distribution_role":   &p.DistributionRole,
		"countercyclical_buffer":        &p.CountercyclicalBuffer,
		"systemic_risk_charge":          &p.SystemicRiskCharge,
	}
}

func (p *BankingParams) Clone() *BankingParams {
	out := *p
	out.Extra = cloneFloatMap(p.Extra)
	return &out
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
