package sim

import (
	"math"
	"math/rand"

	"cbdc-sim/internal/model"
)

// Extension keys written by the banking system.
const (
	keyBankSecurities        = "bank_securities"
	keyBankOtherAssets       = "bank_other_assets"
	keyBankBorrowings        = "bank_borrowings"
	keyBankEquity            = "bank_equity"
	keyPrevLoanRate          = "prev_loan_rate"
	keyPrevInterestRate      = "prev_interest_rate"
	keyPrevBankLoans         = "prev_bank_loans"
	keyCapitalRatio          = "capital_ratio"
	keyLiquidityRatio        = "liquidity_ratio"
	keyCentralBankSecurities = "central_bank_securities"
	keyCentralBankAssets     = "central_bank_assets"
	keyBankingLeverage       = "banking_leverage"
	keyCreditGrowth          = "credit_growth"
	keyFundingStability      = "funding_stability"
	keyCBDCDisintermediation = "cbdc_disintermediation"
	keyCBDCFeeIncome         = "cbdc_fee_income"
)

// bankNode is one commercial bank in the interbank network: a relative size
// share and its directed exposures to the other banks.
type bankNode struct {
	Name      string
	Size      float64
	Exposures map[string]float64
}

// BankingSystem maintains the aggregate bank balance sheet and the interbank
// network, enforces capital and liquidity regulation, runs central-bank
// operations and applies the CBDC competition effects on deposits.
//
// Construction overwrites the loan, deposit and reserve figures in the
// initial state with a balance sheet sized at twice GDP; the configured
// values only matter until then.
type BankingSystem struct {
	state  *model.EconomicState
	params *model.BankingParams
	cbdc   *model.CBDCParams
	banks  []*bankNode
}

// bankShares is the fixed size distribution of the commercial banks.
var bankShares = []struct {
	Name string
	Size float64
}{
	{"Large_Bank_1", 0.30},
	{"Large_Bank_2", 0.25},
	{"Medium_Bank_1", 0.15},
	{"Medium_Bank_2", 0.15},
	{"Small_Bank_1", 0.10},
	{"Small_Bank_2", 0.05},
}

func NewBankingSystem(cfg *model.SimulationConfig, rng *rand.Rand) *BankingSystem {
	b := &BankingSystem{
		state:  cfg.InitialState,
		params: cfg.Banking,
		cbdc:   cfg.CBDC,
	}
	b.initNetwork(rng)
	b.initBalanceSheets()
	return b
}

// initNetwork builds the interbank exposure graph. Banks are added in size
// order and each new bank draws a random exposure to every bank already
// present, so the draws consume the shared random stream deterministically.
func (b *BankingSystem) initNetwork(rng *rand.Rand) {
	for _, share := range bankShares {
		node := &bankNode{
			Name:      share.Name,
			Size:      share.Size,
			Exposures: make(map[string]float64),
		}
		for _, other := range b.banks {
			node.Exposures[other.Name] = rng.Float64() * 0.1 * share.Size
		}
		b.banks = append(b.banks, node)
	}
}

// initBalanceSheets sizes the aggregate balance sheet at twice GDP and
// splits it into the standard asset and liability buckets.
func (b *BankingSystem) initBalanceSheets() {
	s := b.state
	total := s.GDP * 2.0

	s.BankLoans = total * 0.6
	s.BankReserves = total * 0.1
	s.BankDeposits = total * 0.7

	s.Extra[keyBankSecurities] = total * 0.2
	s.Extra[keyBankOtherAssets] = total * 0.1
	s.Extra[keyBankBorrowings] = total * 0.2
	s.Extra[keyBankEquity] = total * 0.1
}

func (b *BankingSystem) Update() {
	b.updateBalanceSheets()
	b.applyRegulations()
	b.centralBankOperations()
	b.updateStabilityIndicators()
	b.applyCBDCEffects()
	b.rebalance()
}

// updateBalanceSheets grows loans, deposits and securities with economic
// activity and rate movements, and sets reserves from the requirement plus a
// rate-sensitive excess.
func (b *BankingSystem) updateBalanceSheets() {
	s := b.state

	gdpGrowth := s.GDP/extraOr(s, keyPrevGDP, s.GDP) - 1
	interestEffect := -0.2 * (s.LoanInterestRate - extraOr(s, keyPrevLoanRate, s.LoanInterestRate))

	loanGrowth := 0.5*gdpGrowth + interestEffect + 0.005
	loanGrowth *= b.params.LendingRiskAppetite
	s.BankLoans *= 1 + loanGrowth

	// Interbank exposures track the aggregate loan book.
	for _, bank := range b.banks {
		for name := range bank.Exposures {
			bank.Exposures[name] *= 1 + loanGrowth
		}
	}

	depositGrowth := 0.3*gdpGrowth + 0.1*(s.DepositInterestRate-1.0) + 0.004
	depositGrowth += -0.1 * math.Max(0, b.cbdc.InterestRate-s.DepositInterestRate)
	s.BankDeposits *= 1 + depositGrowth

	required := s.BankDeposits * b.params.ReserveRequirement
	excess := math.Max(0, s.BankReserves-required)
	excess *= 1 - 0.2*(s.InterestRate-s.DepositInterestRate)
	s.BankReserves = required + excess

	securitiesGrowth := 0.2*gdpGrowth + 0.3*(s.InterestRate-extraOr(s, keyPrevInterestRate, s.InterestRate))
	s.Extra[keyBankSecurities] *= 1 + securitiesGrowth

	s.Extra[keyBankBorrowings] = b.totalAssets() - s.BankDeposits - s.Extra[keyBankEquity]

	s.Extra[keyPrevLoanRate] = s.LoanInterestRate
	s.Extra[keyPrevInterestRate] = s.InterestRate
}

// applyRegulations enforces the capital and liquidity requirements. A
// capital shortfall shrinks the asset side (80% loans, 20% securities); a
// liquidity shortfall rotates loans into reserves and securities.
func (b *BankingSystem) applyRegulations() {
	s := b.state

	assets := b.totalAssets()
	equity := s.Extra[keyBankEquity]
	capitalRatio := equity / assets

	if shortfall := math.Max(0, (b.params.CapitalRequirement-capitalRatio)*assets); shortfall > 0 {
		reduction := shortfall / (1 - b.params.CapitalRequirement)
		s.BankLoans -= reduction * 0.8
		s.Extra[keyBankSecurities] -= reduction * 0.2
	}

	liquid := s.BankReserves + s.Extra[keyBankSecurities]*0.8
	shortTerm := s.BankDeposits*0.3 + s.Extra[keyBankBorrowings]*0.5
	liquidityRatio := liquid / shortTerm

	if shortfall := math.Max(0, (b.params.LiquidityCoverageRatio-liquidityRatio)*shortTerm); shortfall > 0 {
		s.BankLoans -= shortfall * 0.5
		s.BankReserves += shortfall * 0.3
		s.Extra[keyBankSecurities] += shortfall * 0.2
	}

	s.Extra[keyCapitalRatio] = capitalRatio
	s.Extra[keyLiquidityRatio] = liquidityRatio
}

// centralBankOperations runs quantitative easing and programmable CBDC
// issuance. QE swaps bank securities for reserves; issuance grows the CBDC
// supply and the central bank's asset side.
func (b *BankingSystem) centralBankOperations() {
	s := b.state

	if b.params.QuantitativeEasing != 0 {
		amount := b.params.QuantitativeEasing * s.GDP * 0.01
		s.BankReserves += amount
		s.Extra[keyBankSecurities] -= amount
		s.Extra[keyCentralBankSecurities] = extraOr(s, keyCentralBankSecurities, 0) + amount
	}

	if issuance := b.cbdc.AssetPurchases; issuance > 0 {
		s.CBDCSupply += issuance
		s.Extra[keyCentralBankAssets] = extraOr(s, keyCentralBankAssets, 0) + issuance
	}
}

// updateStabilityIndicators computes leverage, credit growth and funding
// stability, blends them into a stability index and stores its complement as
// the financial stress reading.
func (b *BankingSystem) updateStabilityIndicators() {
	s := b.state

	assets := b.totalAssets()
	equity := s.Extra[keyBankEquity]
	leverage := assets / equity

	creditGrowth := 0.01
	if prev, ok := s.Extra[keyPrevBankLoans]; ok {
		creditGrowth = s.BankLoans/prev - 1
	}

	stableFunding := s.BankDeposits*0.7 + s.Extra[keyBankBorrowings]*0.3 + equity
	fundingStability := stableFunding / assets

	stability := 0.3*(1/leverage) +
		0.3*(1-math.Abs(creditGrowth-0.02)/0.05) +
		0.4*fundingStability

	s.FinancialStressIndex = 1 - stability
	s.Extra[keyBankingLeverage] = leverage
	s.Extra[keyCreditGrowth] = creditGrowth
	s.Extra[keyFundingStability] = fundingStability
	s.Extra[keyPrevBankLoans] = s.BankLoans
}

// applyCBDCEffects shifts deposits into CBDC when the CBDC rate beats the
// deposit rate, and credits banks with distribution fee income.
func (b *BankingSystem) applyCBDCEffects() {
	s := b.state

	if b.cbdc.InterestRate > s.DepositInterestRate {
		disintermediation := (b.cbdc.InterestRate - s.DepositInterestRate) * b.params.DisintermediationFactor
		shift := s.BankDeposits * disintermediation
		s.BankDeposits -= shift
		s.CBDCSupply += shift
		s.Extra[keyCBDCDisintermediation] = shift
	} else {
		s.Extra[keyCBDCDisintermediation] = 0.0
	}

	if b.params.DistributionRole > 0 {
		fee := s.CBDCSupply * 0.001 * b.params.DistributionRole
		s.Extra[keyBankEquity] += fee
		s.Extra[keyCBDCFeeIncome] = fee
	}
}

// rebalance closes the period with borrowings as the residual funding item,
// so assets equal liabilities plus equity in every snapshot.
func (b *BankingSystem) rebalance() {
	s := b.state
	s.Extra[keyBankBorrowings] = b.totalAssets() - s.BankDeposits - s.Extra[keyBankEquity]
}

func (b *BankingSystem) totalAssets() float64 {
	s := b.state
	return s.BankLoans + s.BankReserves + s.Extra[keyBankSecurities] + s.Extra[keyBankOtherAssets]
}
