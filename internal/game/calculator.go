package game

import (
	"fmt"
	"math"
)

// AssetType identifies an investable asset class with a fixed annual yield.
type AssetType string

const (
	AssetIndexFund  AssetType = "index_fund"
	AssetTechStocks AssetType = "tech_stocks"
	AssetBonds      AssetType = "bonds"
	AssetSavings    AssetType = "savings_account"
	AssetCrypto     AssetType = "crypto"
	AssetRealEstate AssetType = "real_estate"
)

// ResultQuality is the qualitative outcome band an external narrator declares;
// the calculator turns it into exact numbers.
type ResultQuality string

const (
	ResultMajorGain ResultQuality = "major_gain"
	ResultGain      ResultQuality = "gain"
	ResultNeutral   ResultQuality = "neutral"
	ResultMinorLoss ResultQuality = "minor_loss"
	ResultLoss      ResultQuality = "loss"
	ResultMajorLoss ResultQuality = "major_loss"
)

var assetYields = map[AssetType]float64{
	AssetIndexFund:  0.05,
	AssetTechStocks: 0.08,
	AssetBonds:      0.03,
	AssetSavings:    0.01,
	AssetCrypto:     0.10,
	AssetRealEstate: 0.06,
}

type multiplierRange struct {
	lo, hi float64
}

var outcomeMultipliers = map[ResultQuality]multiplierRange{
	ResultMajorGain: {1.20, 1.35},
	ResultGain:      {1.05, 1.15},
	ResultNeutral:   {0.98, 1.02},
	ResultMinorLoss: {0.90, 0.95},
	ResultLoss:      {0.70, 0.85},
	ResultMajorLoss: {0.30, 0.60},
}

// InvestmentOutcome is the exact monetary consequence of one buy or sell.
type InvestmentOutcome struct {
	MoneyChange         float64
	InvestmentChange    float64
	PassiveIncomeChange float64
	NetGainLoss         float64
}

// CalculateInvestmentOutcome converts a qualitative result into deltas. A
// positive principal invests (cash down, portfolio up); a negative principal
// divests with the signs inverted. Passive income moves with the portfolio
// change at the asset's monthly yield. All outputs are rounded to cents.
func CalculateInvestmentOutcome(principal float64, assetType AssetType, quality ResultQuality, rng Rand) (InvestmentOutcome, error) {
	yield, ok := assetYields[assetType]
	if !ok {
		return InvestmentOutcome{}, fmt.Errorf("invalid asset type %q", assetType)
	}
	band, ok := outcomeMultipliers[quality]
	if !ok {
		return InvestmentOutcome{}, fmt.Errorf("invalid result quality %q", quality)
	}

	if principal == 0 {
		return InvestmentOutcome{}, nil
	}

	multiplier := uniformRange(rng, band.lo, band.hi)
	finalValue := math.Abs(principal) * multiplier
	netGainLoss := finalValue - math.Abs(principal)

	var moneyChange, investmentChange float64
	if principal > 0 {
		moneyChange = -math.Abs(principal)
		investmentChange = finalValue
	} else {
		moneyChange = finalValue
		investmentChange = -math.Abs(principal)
	}

	monthlyYield := yield / 12

	return InvestmentOutcome{
		MoneyChange:         roundCents(moneyChange),
		InvestmentChange:    roundCents(investmentChange),
		PassiveIncomeChange: roundCents(investmentChange * monthlyYield),
		NetGainLoss:         roundCents(netGainLoss),
	}, nil
}

// LifestyleLevel scales how a household splits its spending.
type LifestyleLevel int

const (
	LifestyleFrugal      LifestyleLevel = 1
	LifestyleModerate    LifestyleLevel = 2
	LifestyleComfortable LifestyleLevel = 3
	LifestyleLuxury      LifestyleLevel = 4
)

// CalculateExpenseBreakdown splits a total monthly spend across the seven
// categories. The other category absorbs the rounding remainder so the seven
// values always sum to the total exactly.
func CalculateExpenseBreakdown(totalExpenses float64, city string, hasCar bool, lifestyle LifestyleLevel) map[ExpenseCategory]float64 {
	percentages := map[ExpenseCategory]float64{
		CategoryHousing:       0.35,
		CategoryFood:          0.20,
		CategoryTransport:     0.10,
		CategoryUtilities:     0.08,
		CategorySubscriptions: 0.05,
		CategoryInsurance:     0.07,
		CategoryOther:         0.15,
	}

	switch lifestyle {
	case LifestyleFrugal:
		percentages[CategoryHousing] = 0.40
		percentages[CategoryFood] = 0.18
		percentages[CategorySubscriptions] = 0.03
		percentages[CategoryOther] = 0.10
	case LifestyleComfortable:
		percentages[CategoryHousing] = 0.32
		percentages[CategoryFood] = 0.22
		percentages[CategorySubscriptions] = 0.08
		percentages[CategoryOther] = 0.18
	case LifestyleLuxury:
		percentages[CategoryHousing] = 0.30
		percentages[CategoryFood] = 0.25
		percentages[CategorySubscriptions] = 0.10
		percentages[CategoryOther] = 0.20
	}

	if hasCar {
		percentages[CategoryTransport] = 0.15
		percentages[CategoryInsurance] = 0.10
		reduction := 0.08
		for _, c := range []ExpenseCategory{CategoryHousing, CategoryFood, CategoryOther} {
			percentages[c] -= reduction / 3
		}
	}

	breakdown := make(map[ExpenseCategory]float64, len(AllCategories))
	allocated := 0.0
	for _, c := range AllCategories {
		if c == CategoryOther {
			continue
		}
		breakdown[c] = roundCents(totalExpenses * percentages[c])
		allocated += breakdown[c]
	}
	breakdown[CategoryOther] = roundCents(totalExpenses - allocated)

	return breakdown
}

// ValidateBalanceSheet checks that a transaction keeps total wealth movement
// equal to the declared money+investment deltas, and that it does not spend
// cash that is not there. Failures come back as (false, reason); callers
// treat the result as advisory.
func ValidateBalanceSheet(moneyBefore, investmentsBefore, moneyChange, investmentChange float64) (bool, string) {
	if moneyBefore+moneyChange < 0 {
		return false, fmt.Sprintf("insufficient funds: balance %.2f + change %.2f = negative", moneyBefore, moneyChange)
	}

	totalBefore := moneyBefore + investmentsBefore
	totalAfter := (moneyBefore + moneyChange) + (investmentsBefore + investmentChange)
	wealthChange := totalAfter - totalBefore

	expected := moneyChange + investmentChange
	if math.Abs(wealthChange-expected) > 0.01 {
		return false, fmt.Sprintf("balance sheet error: wealth change %.2f != money change %.2f + investment change %.2f", wealthChange, moneyChange, investmentChange)
	}

	return true, fmt.Sprintf("valid transaction (wealth change: €%.2f)", wealthChange)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
